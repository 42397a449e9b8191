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

// Package hwy dispatches generic arithmetic over scalars, arrays and vector
// registers to the fastest path a target supports.
//
// It follows the Highway C++ library's design philosophy: write one generic
// call and let the target decide. Every operation first tries the native
// vector path (registers of 128, 256 or 512 bits holding one element kind),
// converting operands between lane widths when the requested output kind
// differs, and falls back to an element-wise loop when any step is not
// available on the target.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwyarith/hwy"
//
//	// Build registers from partial arrays, padding unused lanes.
//	a := hwy.Load[int32, hwy.Vec128[int32]]([]int32{1, 2, 3}, 0)
//
//	// Or describe operands and let the dispatch core pick the path.
//	lhs := hwy.ArrayOf([]int8{1, 2, 3, 4})
//	rhs := hwy.ScalarOf[int8](3)
//
// The operation catalog lives in package hwy/contrib/arith.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// SignedLanes is a constraint for lane types that carry a sign:
// signed integers and floats.
type SignedLanes interface {
	SignedInts | Floats
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
