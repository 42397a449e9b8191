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

// Package arith is the operation catalog of the hwy dispatch core: generic
// arithmetic and comparison over scalars, arrays and vector registers.
//
// Every operation takes a target (nil for hwy.CurrentTarget()) and two
// operands of any form and lane type. The first type parameter O forces
// the kind the lanes are computed and returned in; the operand types are
// inferred. When the target has a native instruction sequence for O at the
// width the operands need, the call runs on registers; otherwise it runs
// the element-wise fallback. Both paths give bit-identical results.
//
// # Operations
//
//   - Add, Subtract: wrapping.
//   - Multiply: wrapping, except 8-bit lanes saturate.
//   - Divide: returns hwy.ErrDivisionByZero if any divisor lane is zero.
//   - Power: repeated squaring for integers, math.Pow for floats.
//   - Min, Max.
//   - Equals, Greater, Lesser, EqualsOrGreater, EqualsOrLesser: return a
//     hwy.Mask, computed in the lossless pair kind of the operands.
//   - ShiftLeft, ShiftRight: counts outside [0, bits) give 0.
//   - XOr: bitwise, floats by bit pattern.
//   - SaturatedAdd, SaturatedSub: integers, clamped to the lane range.
//   - Abs (signed kinds), Floor, Ceil, Round (float kinds).
//
// # Example Usage
//
//	import (
//		"github.com/ajroetker/hwyarith/hwy"
//		"github.com/ajroetker/hwyarith/hwy/contrib/arith"
//	)
//
//	a := hwy.Load[uint8, hwy.Vec128[uint8]]([]uint8{200, 3}, 0)
//	p := arith.Multiply[uint8](nil, a, hwy.ScalarOf[uint8](200)) // [255 255 0 ...]
//
//	q, err := arith.Divide[float32](nil, hwy.ArrayOf([]int32{1, 2}), hwy.ScalarOf[float32](0))
//	// err == hwy.ErrDivisionByZero
package arith
