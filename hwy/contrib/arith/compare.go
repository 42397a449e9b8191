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

// Equals reports lhs == rhs per lane.
func Equals[A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Mask {
	return hwy.AttemptCompare(t, hwy.CmpEq, lhs, rhs)
}

// Greater reports lhs > rhs per lane.
func Greater[A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Mask {
	return hwy.AttemptCompare(t, hwy.CmpGt, lhs, rhs)
}

// Lesser reports lhs < rhs per lane.
func Lesser[A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Mask {
	return hwy.AttemptCompare(t, hwy.CmpLt, lhs, rhs)
}

// EqualsOrGreater reports lhs >= rhs per lane.
func EqualsOrGreater[A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Mask {
	return hwy.AttemptCompare(t, hwy.CmpGe, lhs, rhs)
}

// EqualsOrLesser reports lhs <= rhs per lane.
func EqualsOrLesser[A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Mask {
	return hwy.AttemptCompare(t, hwy.CmpLe, lhs, rhs)
}
