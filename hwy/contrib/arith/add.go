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

package arith

import "github.com/ajroetker/hwyarith/hwy"

// Add returns lhs + rhs computed in O, wrapping on overflow.
func Add[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpAdd,
		Native: kernel(hwy.VAdd[O]),
		Scalar: lane(func(a, b O) O { return a + b }),
	}, lhs, rhs, 0)
}

// Subtract returns lhs - rhs computed in O, wrapping on overflow.
func Subtract[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpSub,
		Native: kernel(hwy.VSub[O]),
		Scalar: lane(func(a, b O) O { return a - b }),
	}, lhs, rhs, 0)
}

// SaturatedAdd returns lhs + rhs clamped to the range of O.
func SaturatedAdd[O hwy.Integers, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpSatAdd,
		Native: kernel(hwy.VSatAdd[O]),
		Scalar: lane(hwy.SatAddLane[O]),
	}, lhs, rhs, 0)
}

// SaturatedSub returns lhs - rhs clamped to the range of O.
func SaturatedSub[O hwy.Integers, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpSatSub,
		Native: kernel(hwy.VSatSub[O]),
		Scalar: lane(hwy.SatSubLane[O]),
	}, lhs, rhs, 0)
}
