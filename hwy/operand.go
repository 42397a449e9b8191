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

// Form tells which kind of operand a value is.
type Form uint8

const (
	// FormScalar is a single value, broadcast against other operands.
	FormScalar Form = iota
	// FormArray is a run of N lanes held in a slice.
	FormArray
	// FormRegister is a Vec128, Vec256 or Vec512.
	FormRegister
)

func (f Form) String() string {
	switch f {
	case FormScalar:
		return "scalar"
	case FormArray:
		return "array"
	case FormRegister:
		return "register"
	}
	return "invalid"
}

// Operand is a scalar, an array or a register of lane type T. Every
// operation accepts operands of any form and never mutates them.
//
// The lane count is 1 for a scalar, len for an array and
// width/sizeof(T) for a register.
type Operand[T Lanes] interface {
	Form() Form
	NumLanes() int
	Lane(i int) T
	Store(dst []T) int
}

// Scalar is a single-value operand.
type Scalar[T Lanes] struct {
	Value T
}

// ScalarOf wraps v as an operand.
func ScalarOf[T Lanes](v T) Scalar[T] {
	return Scalar[T]{Value: v}
}

// Form returns FormScalar.
func (Scalar[T]) Form() Form { return FormScalar }

// NumLanes returns 1.
func (Scalar[T]) NumLanes() int { return 1 }

// Lane returns the value for every i.
func (s Scalar[T]) Lane(int) T { return s.Value }

// Store writes the value to dst[0] when dst is not empty.
func (s Scalar[T]) Store(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	dst[0] = s.Value
	return 1
}

// Array is a fixed run of lanes backed by a slice.
type Array[T Lanes] []T

// ArrayOf wraps s as an operand without copying it.
func ArrayOf[T Lanes](s []T) Array[T] {
	return Array[T](s)
}

// Form returns FormArray.
func (Array[T]) Form() Form { return FormArray }

// NumLanes returns len(a).
func (a Array[T]) NumLanes() int { return len(a) }

// Lane returns a[i].
func (a Array[T]) Lane(i int) T { return a[i] }

// Store copies the lanes to dst and returns the number written.
func (a Array[T]) Store(dst []T) int { return copy(dst, a) }

// ToSlice returns the lanes of any operand as a new slice.
func ToSlice[T Lanes](op Operand[T]) []T {
	out := make([]T, op.NumLanes())
	op.Store(out)
	return out
}

// MapLanes returns a copy of op with lane i replaced by f(i, lane) for
// every i below n. The copy has the form and type of op; lanes from n on
// keep their values. op itself is not modified.
func MapLanes[T Lanes](op Operand[T], n int, f func(i int, x T) T) Operand[T] {
	switch v := op.(type) {
	case Scalar[T]:
		if n > 0 {
			v.Value = f(0, v.Value)
		}
		return v
	case Vec128[T]:
		mapPrefix(regLanes[T](&v), n, f)
		return v
	case Vec256[T]:
		mapPrefix(regLanes[T](&v), n, f)
		return v
	case Vec512[T]:
		mapPrefix(regLanes[T](&v), n, f)
		return v
	}
	out := ToSlice(op)
	mapPrefix(out, n, f)
	return Array[T](out)
}

func mapPrefix[T Lanes](lanes []T, n int, f func(i int, x T) T) {
	for i := range lanes[:min(n, len(lanes))] {
		lanes[i] = f(i, lanes[i])
	}
}

// Overlap returns the number of lanes a binary operation on lhs and rhs
// computes: the shortest non-scalar lane count, or 1 when both operands
// are scalars.
func Overlap[A, B Lanes](lhs Operand[A], rhs Operand[B]) int {
	n, ok := overlap(countOf(lhs), countOf(rhs))
	if !ok {
		return 1
	}
	return n
}

// spill returns the lanes of op as an Array when op is a register, and op
// unchanged otherwise.
func spill[T Lanes](op Operand[T]) Operand[T] {
	if op.Form() != FormRegister {
		return op
	}
	return Array[T](ToSlice(op))
}

// overlap returns the lane count shared by the non-scalar operands. The
// second result is false when every operand is a scalar.
func overlap(counts ...laneCount) (int, bool) {
	n, seen := 0, false
	for _, c := range counts {
		if c.form == FormScalar {
			continue
		}
		if !seen || c.n < n {
			n = c.n
		}
		seen = true
	}
	return n, seen
}

type laneCount struct {
	form Form
	n    int
}

func countOf[T Lanes](op Operand[T]) laneCount {
	return laneCount{form: op.Form(), n: op.NumLanes()}
}
