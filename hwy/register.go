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

package hwy

import (
	"fmt"
	"unsafe"
)

// Registers are a closed set of value types, one per width class. Each holds
// a homogeneous run of lanes of one element type in fixed storage; copying a
// register copies its lanes. Storage is kept in uint64 words so every lane
// type is naturally aligned.

// Vec128 is a 128-bit vector register.
type Vec128[T Lanes] struct {
	raw [2]uint64
}

// Vec256 is a 256-bit vector register.
type Vec256[T Lanes] struct {
	raw [4]uint64
}

// Vec512 is a 512-bit vector register.
type Vec512[T Lanes] struct {
	raw [8]uint64
}

// Register is the constraint satisfied by the three register types.
type Register[T Lanes] interface {
	Vec128[T] | Vec256[T] | Vec512[T]
	Operand[T]
	Width() Width
}

// registerValue is implemented by every register instantiation; it lets
// IsRegister classify values without knowing the lane type.
type registerValue interface {
	Width() Width
	isRegister()
}

func (v *Vec128[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), LanesOf[T](Width128))
}

func (v *Vec256[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), LanesOf[T](Width256))
}

func (v *Vec512[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), LanesOf[T](Width512))
}

func (Vec128[T]) isRegister() {}
func (Vec256[T]) isRegister() {}
func (Vec512[T]) isRegister() {}

// Width returns Width128.
func (Vec128[T]) Width() Width { return Width128 }

// Width returns Width256.
func (Vec256[T]) Width() Width { return Width256 }

// Width returns Width512.
func (Vec512[T]) Width() Width { return Width512 }

// Form returns FormRegister.
func (Vec128[T]) Form() Form { return FormRegister }

// Form returns FormRegister.
func (Vec256[T]) Form() Form { return FormRegister }

// Form returns FormRegister.
func (Vec512[T]) Form() Form { return FormRegister }

// NumLanes returns the number of T lanes in 128 bits.
func (Vec128[T]) NumLanes() int { return LanesOf[T](Width128) }

// NumLanes returns the number of T lanes in 256 bits.
func (Vec256[T]) NumLanes() int { return LanesOf[T](Width256) }

// NumLanes returns the number of T lanes in 512 bits.
func (Vec512[T]) NumLanes() int { return LanesOf[T](Width512) }

// Lane returns lane i. It panics if i is out of range.
func (v Vec128[T]) Lane(i int) T { return v.lanes()[i] }

// Lane returns lane i. It panics if i is out of range.
func (v Vec256[T]) Lane(i int) T { return v.lanes()[i] }

// Lane returns lane i. It panics if i is out of range.
func (v Vec512[T]) Lane(i int) T { return v.lanes()[i] }

// Store writes the lanes to dst and returns the number written.
func (v Vec128[T]) Store(dst []T) int { return copy(dst, v.lanes()) }

// Store writes the lanes to dst and returns the number written.
func (v Vec256[T]) Store(dst []T) int { return copy(dst, v.lanes()) }

// Store writes the lanes to dst and returns the number written.
func (v Vec512[T]) Store(dst []T) int { return copy(dst, v.lanes()) }

func (v Vec128[T]) String() string { return fmt.Sprint(v.lanes()) }
func (v Vec256[T]) String() string { return fmt.Sprint(v.lanes()) }
func (v Vec512[T]) String() string { return fmt.Sprint(v.lanes()) }

// regLanes returns a mutable view of the lanes of *r.
func regLanes[T Lanes, R Register[T]](r *R) []T {
	switch p := any(r).(type) {
	case *Vec128[T]:
		return p.lanes()
	case *Vec256[T]:
		return p.lanes()
	case *Vec512[T]:
		return p.lanes()
	}
	panic("hwy: unknown register type")
}

// vreg is the engine's working register: a width tag over 512 bits of
// storage. It never escapes the package; callers see Vec128, Vec256 or
// Vec512 chosen by the width.
type vreg[T Lanes] struct {
	w   Width
	raw [8]uint64
}

func (v *vreg[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), LanesOf[T](v.w))
}

// block returns a view of the 128-bit block i.
func (v *vreg[T]) block(i int) []T {
	n := LanesOf[T](Width128)
	return v.lanes()[i*n : (i+1)*n]
}

// words returns the storage words that belong to the width.
func (v *vreg[T]) words() []uint64 {
	return v.raw[:v.w.Bytes()/8]
}

// toRegister wraps v in the public register type of its width.
func (v *vreg[T]) toRegister() Operand[T] {
	switch v.w {
	case Width128:
		var r Vec128[T]
		copy(r.raw[:], v.raw[:])
		return r
	case Width256:
		var r Vec256[T]
		copy(r.raw[:], v.raw[:])
		return r
	default:
		var r Vec512[T]
		r.raw = v.raw
		return r
	}
}

// vregOf copies a public register into a working register. The second
// result is false when op is not a register.
func vregOf[T Lanes](op Operand[T]) (vreg[T], bool) {
	var v vreg[T]
	switch r := op.(type) {
	case Vec128[T]:
		v.w = Width128
		copy(v.raw[:], r.raw[:])
	case Vec256[T]:
		v.w = Width256
		copy(v.raw[:], r.raw[:])
	case Vec512[T]:
		v.w = Width512
		v.raw = r.raw
	default:
		return v, false
	}
	return v, true
}

// asRegister converts a working register into the caller's register type R.
// The widths must agree.
func asRegister[T Lanes, R Register[T]](v *vreg[T]) R {
	var r R
	copy(regLanes[T](&r), v.lanes())
	return r
}
