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

import (
	"fmt"

	"github.com/ajroetker/hwyarith/hwy"
)

// binary runs op through the dispatch core for operations that raise no
// errors of their own.
func binary[O, A, B hwy.Lanes](t *hwy.Target, op hwy.BinaryOp[O], lhs hwy.Operand[A], rhs hwy.Operand[B], def O) hwy.Operand[O] {
	r, err := hwy.AttemptBinary(t, op, lhs, rhs, def)
	if err != nil {
		panic(fmt.Sprintf("arith: %s: %v", op.ID, err))
	}
	return r
}

func unary[O, A hwy.Lanes](t *hwy.Target, op hwy.UnaryOp[O], v hwy.Operand[A], def O) hwy.Operand[O] {
	r, err := hwy.AttemptUnary(t, op, v, def)
	if err != nil {
		panic(fmt.Sprintf("arith: %s: %v", op.ID, err))
	}
	return r
}

// zeroWhere zeroes the lanes of r whose rhs lane, read as int64 in its own
// kind, satisfies drop. Lanes past the overlap of lhs and rhs are kept.
func zeroWhere[O, A, B hwy.Lanes](r hwy.Operand[O], lhs hwy.Operand[A], rhs hwy.Operand[B], drop func(int64) bool) hwy.Operand[O] {
	n := hwy.Overlap(lhs, rhs)
	hit := false
	for i := 0; i < n && !hit; i++ {
		hit = drop(hwy.ConvertLane[int64](rhs.Lane(i)))
	}
	if !hit {
		return r
	}
	return hwy.MapLanes(r, n, func(i int, x O) O {
		if drop(hwy.ConvertLane[int64](rhs.Lane(i))) {
			return 0
		}
		return x
	})
}

// kernel adapts a backend primitive to the native callable shape.
func kernel[O hwy.Lanes](f func(w hwy.Width, dst, a, b []O)) func(hwy.Width, []O, []O, []O) error {
	return func(w hwy.Width, dst, a, b []O) error {
		f(w, dst, a, b)
		return nil
	}
}

func kernel1[O hwy.Lanes](f func(w hwy.Width, dst, a []O)) func(hwy.Width, []O, []O) error {
	return func(w hwy.Width, dst, a []O) error {
		f(w, dst, a)
		return nil
	}
}

// lane adapts a lane function to the fallback callable shape.
func lane[O hwy.Lanes](f func(a, b O) O) func(O, O) (O, error) {
	return func(a, b O) (O, error) {
		return f(a, b), nil
	}
}

func lane1[O hwy.Lanes](f func(a O) O) func(O) (O, error) {
	return func(a O) (O, error) {
		return f(a), nil
	}
}
