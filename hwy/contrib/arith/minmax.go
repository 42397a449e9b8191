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

// Min returns the lane-wise minimum computed in O. A NaN lane in either
// operand selects rhs.
func Min[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpMin,
		Native: kernel(hwy.VMin[O]),
		Scalar: lane(func(a, b O) O {
			if a < b {
				return a
			}
			return b
		}),
	}, lhs, rhs, 0)
}

// Max returns the lane-wise maximum computed in O. A NaN lane in either
// operand selects rhs.
func Max[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpMax,
		Native: kernel(hwy.VMax[O]),
		Scalar: lane(func(a, b O) O {
			if a > b {
				return a
			}
			return b
		}),
	}, lhs, rhs, 0)
}
