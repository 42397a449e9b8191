// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// hasAVX2 gates the archsimd kernels. Targets built with TargetFor may
// claim AVX2 on machines without it; the hooks then report false and the
// portable loops run.
var hasAVX2 = archsimd.X86.AVX2()

// simdBinary runs op on one 256-bit register of float32, float64, int32 or
// int64 lanes. It reports false for every other combination.
func simdBinary[E Lanes](op OpID, w Width, dst, a, b []E) bool {
	if !hasAVX2 || w != Width256 {
		return false
	}
	switch d := any(dst).(type) {
	case []float32:
		x := archsimd.LoadFloat32x8Slice(any(a).([]float32))
		y := archsimd.LoadFloat32x8Slice(any(b).([]float32))
		switch op {
		case OpAdd:
			x.Add(y).StoreSlice(d)
		case OpSub:
			x.Sub(y).StoreSlice(d)
		case OpMul:
			x.Mul(y).StoreSlice(d)
		case OpDiv:
			x.Div(y).StoreSlice(d)
		default:
			return false
		}
	case []float64:
		x := archsimd.LoadFloat64x4Slice(any(a).([]float64))
		y := archsimd.LoadFloat64x4Slice(any(b).([]float64))
		switch op {
		case OpAdd:
			x.Add(y).StoreSlice(d)
		case OpSub:
			x.Sub(y).StoreSlice(d)
		case OpMul:
			x.Mul(y).StoreSlice(d)
		case OpDiv:
			x.Div(y).StoreSlice(d)
		default:
			return false
		}
	case []int32:
		x := archsimd.LoadInt32x8Slice(any(a).([]int32))
		y := archsimd.LoadInt32x8Slice(any(b).([]int32))
		switch op {
		case OpAdd:
			x.Add(y).StoreSlice(d)
		case OpSub:
			x.Sub(y).StoreSlice(d)
		default:
			return false
		}
	case []int64:
		x := archsimd.LoadInt64x4Slice(any(a).([]int64))
		y := archsimd.LoadInt64x4Slice(any(b).([]int64))
		switch op {
		case OpAdd:
			x.Add(y).StoreSlice(d)
		case OpSub:
			x.Sub(y).StoreSlice(d)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// simdCmpMask runs an equality compare on one 256-bit register of float
// lanes and returns the mask bits.
func simdCmpMask[E Lanes](p ComparePred, w Width, a, b []E) (uint64, bool) {
	if !hasAVX2 || w != Width256 || p != CmpEq {
		return 0, false
	}
	switch x := any(a).(type) {
	case []float32:
		y := any(b).([]float32)
		m := archsimd.LoadFloat32x8Slice(x).Equal(archsimd.LoadFloat32x8Slice(y))
		return uint64(m.ToBits()), true
	case []float64:
		y := any(b).([]float64)
		m := archsimd.LoadFloat64x4Slice(x).Equal(archsimd.LoadFloat64x4Slice(y))
		return uint64(m.ToBits()), true
	}
	return 0, false
}
