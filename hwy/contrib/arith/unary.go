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
	"math"

	"github.com/ajroetker/hwyarith/hwy"
)

// Abs returns the absolute value of each lane computed in O. Float lanes
// clear the sign bit; integer lanes wrap, so the minimum value maps to
// itself.
func Abs[O hwy.SignedLanes, A hwy.Lanes](t *hwy.Target, v hwy.Operand[A]) hwy.Operand[O] {
	return unary(t, hwy.UnaryOp[O]{
		ID:     hwy.OpAbs,
		Native: kernel1(hwy.VAbs[O]),
		Scalar: lane1(hwy.AbsLane[O]),
	}, v, 0)
}

// Floor rounds each lane toward negative infinity.
func Floor[O hwy.Floats, A hwy.Lanes](t *hwy.Target, v hwy.Operand[A]) hwy.Operand[O] {
	return unary(t, hwy.UnaryOp[O]{
		ID:     hwy.OpFloor,
		Native: kernel1(hwy.VFloor[O]),
		Scalar: lane1(floorLane[O]),
	}, v, 0)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[O hwy.Floats, A hwy.Lanes](t *hwy.Target, v hwy.Operand[A]) hwy.Operand[O] {
	return unary(t, hwy.UnaryOp[O]{
		ID:     hwy.OpCeil,
		Native: kernel1(hwy.VCeil[O]),
		Scalar: lane1(ceilLane[O]),
	}, v, 0)
}

// Round rounds each lane to the nearest integer, ties to even.
func Round[O hwy.Floats, A hwy.Lanes](t *hwy.Target, v hwy.Operand[A]) hwy.Operand[O] {
	return unary(t, hwy.UnaryOp[O]{
		ID:     hwy.OpRound,
		Native: kernel1(hwy.VRound[O]),
		Scalar: lane1(roundLane[O]),
	}, v, 0)
}

// The fallback rounding functions work by integer truncation plus an
// adjustment. Zero results keep the sign of the input, as the rounding
// instructions do.

// integral reports whether x needs no rounding: NaN, infinities and
// magnitudes of 2^52 and up.
func integral(x float64) bool {
	return x != x || math.Abs(x) >= 1<<52
}

func signedZero[O hwy.Floats](r, x float64) O {
	if r == 0 {
		return O(math.Copysign(0, x))
	}
	return O(r)
}

func floorLane[O hwy.Floats](a O) O {
	x := float64(a)
	if integral(x) {
		return a
	}
	r := float64(int64(x))
	if r > x {
		r--
	}
	return signedZero[O](r, x)
}

func ceilLane[O hwy.Floats](a O) O {
	x := float64(a)
	if integral(x) {
		return a
	}
	r := float64(int64(x))
	if r < x {
		r++
	}
	return signedZero[O](r, x)
}

func roundLane[O hwy.Floats](a O) O {
	x := float64(a)
	if integral(x) {
		return a
	}
	r := float64(int64(x))
	frac := x - r
	switch {
	case frac > 0.5, frac == 0.5 && int64(r)&1 != 0:
		r++
	case frac < -0.5, frac == -0.5 && int64(r)&1 != 0:
		r--
	}
	return signedZero[O](r, x)
}
