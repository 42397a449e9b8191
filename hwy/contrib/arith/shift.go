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

// ShiftLeft shifts each lane of lhs left by the matching lane of rhs,
// both converted to O. A count that is negative or at least the lane width
// of O gives 0; the range is checked on the count as given, before the
// conversion can saturate it into range.
func ShiftLeft[O hwy.Integers, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	r := binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpShl,
		Native: shiftNative(hwy.VShl[O]),
		Scalar: lane(func(a, c O) O {
			if !countInRange(c) {
				return 0
			}
			return a << c
		}),
	}, lhs, rhs, 0)
	return zeroWhere(r, lhs, rhs, countOutOfRange[O])
}

// ShiftRight shifts each lane of lhs right by the matching lane of rhs,
// both converted to O: arithmetic for signed kinds, logical for unsigned.
// A count that is negative or at least the lane width of O gives 0, also
// for negative lanes, checked as in ShiftLeft.
func ShiftRight[O hwy.Integers, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	r := binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpShr,
		Native: shiftNative(hwy.VShr[O]),
		Scalar: lane(func(a, c O) O {
			if !countInRange(c) {
				return 0
			}
			return a >> c
		}),
	}, lhs, rhs, 0)
	return zeroWhere(r, lhs, rhs, countOutOfRange[O])
}

func countInRange[O hwy.Integers](c O) bool {
	return c >= 0 && uint64(c) < uint64(hwy.KindOf[O]().Bits())
}

func countOutOfRange[O hwy.Integers](c int64) bool {
	return c < 0 || c >= int64(hwy.KindOf[O]().Bits())
}

// shiftNative runs the hardware shift, then zeroes the lanes whose count
// is out of range. Hardware shifts read counts as unsigned and sign-fill
// arithmetic shifts, so both negative and oversized counts need the fixup.
func shiftNative[O hwy.Integers](shift func(w hwy.Width, dst, a, c []O)) func(hwy.Width, []O, []O, []O) error {
	return func(w hwy.Width, dst, a, c []O) error {
		shift(w, dst, a, c)
		var buf [3][64]O
		n := len(c)
		limit, zero, mask := buf[0][:n], buf[1][:n], buf[2][:n]
		bits := O(hwy.KindOf[O]().Bits())
		for i := range limit {
			limit[i] = bits
		}
		hwy.VCmp(w, hwy.CmpGe, mask, c, limit)
		hwy.VSelect(w, dst, mask, zero, dst)
		if hwy.IsSigned[O]() {
			hwy.VCmp(w, hwy.CmpLt, mask, c, zero)
			hwy.VSelect(w, dst, mask, zero, dst)
		}
		return nil
	}
}

// XOr returns the bitwise exclusive or of lhs and rhs computed in O. Float
// lanes combine their bit patterns.
func XOr[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpXor,
		Native: kernel(hwy.VXor[O]),
		Scalar: lane(hwy.XorLane[O]),
	}, lhs, rhs, 0)
}
