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

// Multiply returns lhs * rhs computed in O. 8-bit lanes saturate to the
// lane range, so 200 * 200 in uint8 is 255; other kinds wrap.
func Multiply[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	return binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpMul,
		Native: kernel(hwy.VMulSat[O]),
		Scalar: lane(hwy.MulSatLane[O]),
	}, lhs, rhs, 0)
}

// Divide returns lhs / rhs computed in O. Integer division truncates.
//
// If any divisor lane is zero after conversion to O, Divide returns
// hwy.ErrDivisionByZero, whichever path runs and for every kind. Lanes a
// register holds past the operands' overlap are filled with 1 and never
// raise the error.
func Divide[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) (hwy.Operand[O], error) {
	return hwy.AttemptBinary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpDiv,
		Native: divideNative[O],
		Scalar: divideLane[O],
	}, lhs, rhs, 1)
}

func divideNative[O hwy.Lanes](w hwy.Width, dst, a, b []O) error {
	var zeros [64]O
	if hwy.VCmpMask(w, hwy.CmpEq, b, zeros[:len(b)]) != 0 {
		return hwy.ErrDivisionByZero
	}
	hwy.VDiv(w, dst, a, b)
	return nil
}

func divideLane[O hwy.Lanes](a, b O) (O, error) {
	if b == 0 {
		return 0, hwy.ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns lhs raised to rhs computed in O. Integer kinds use repeated
// squaring and wrap; a negative exponent gives 0, also when O is unsigned
// and the exponent comes from a signed or float kind. Float kinds use
// math.Pow.
func Power[O, A, B hwy.Lanes](t *hwy.Target, lhs hwy.Operand[A], rhs hwy.Operand[B]) hwy.Operand[O] {
	r := binary(t, hwy.BinaryOp[O]{
		ID:     hwy.OpPow,
		Native: kernel(hwy.VPow[O]),
		Scalar: lane(hwy.PowLane[O]),
	}, lhs, rhs, 1)
	if !hwy.IsInteger[O]() {
		return r
	}
	return zeroWhere(r, lhs, rhs, negative)
}

func negative(e int64) bool { return e < 0 }
