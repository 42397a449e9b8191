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
	"math"
	"unsafe"
)

// This file holds the lane-wise backend primitives. Each one processes the
// lanes of a single register of width w: dst, a and b hold exactly
// LanesOf[E](w) lanes. The portable loops define the semantics; on targets
// with a faster kernel the simd* hooks take over first.

// ComparePred selects a lane comparison.
type ComparePred uint8

const (
	CmpEq ComparePred = iota
	CmpGt
	CmpLt
	CmpGe
	CmpLe
)

// Op returns the capability table row of the predicate.
func (p ComparePred) Op() OpID {
	switch p {
	case CmpGt:
		return OpGt
	case CmpLt:
		return OpLt
	case CmpGe:
		return OpGe
	case CmpLe:
		return OpLe
	}
	return OpEq
}

func (p ComparePred) String() string { return p.Op().String() }

func compareLane[E Lanes](p ComparePred, a, b E) bool {
	switch p {
	case CmpGt:
		return a > b
	case CmpLt:
		return a < b
	case CmpGe:
		return a >= b
	case CmpLe:
		return a <= b
	}
	return a == b
}

// bitsOf returns the bit pattern of x, zero-extended.
func bitsOf[E Lanes](x E) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	}
	return *(*uint64)(p)
}

// fromBits returns the lane whose bit pattern is the low bits of b.
func fromBits[E Lanes](b uint64) E {
	var x E
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(b)
	case 2:
		*(*uint16)(p) = uint16(b)
	case 4:
		*(*uint32)(p) = uint32(b)
	default:
		*(*uint64)(p) = b
	}
	return x
}

func laneBits[E Lanes]() uint {
	var x E
	return uint(unsafe.Sizeof(x)) * 8
}

// VAdd sets dst = a + b, wrapping.
func VAdd[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpAdd, w, dst, a, b) {
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// VSub sets dst = a - b, wrapping.
func VSub[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpSub, w, dst, a, b) {
		return
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// VMul sets dst = a * b, wrapping.
func VMul[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpMul, w, dst, a, b) {
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// VMulSat multiplies like VMul, except that 8-bit integer lanes widen to
// 16 bits, multiply exactly and narrow back with saturation.
func VMulSat[E Lanes](w Width, dst, a, b []E) {
	if KindOf[E]().Size() != 1 {
		VMul(w, dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = MulSatLane(a[i], b[i])
	}
}

// MulSatLane is the lane form of VMulSat.
func MulSatLane[E Lanes](a, b E) E {
	k := KindOf[E]()
	if k.Size() != 1 {
		return a * b
	}
	wide := IntKind(2, k.Signed())
	x := convertCarrier(k, wide, toCarrier(a))
	y := convertCarrier(k, wide, toCarrier(b))
	p := normalize(wide, x*y)
	return fromCarrier[E](convertCarrier(wide, k, p))
}

// VDiv sets dst = a / b. Integer division truncates. The caller checks b
// for zero lanes first.
func VDiv[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpDiv, w, dst, a, b) {
		return
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// VMin sets dst = a < b ? a : b, which returns b when either lane is NaN.
func VMin[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpMin, w, dst, a, b) {
		return
	}
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// VMax sets dst = a > b ? a : b, which returns b when either lane is NaN.
func VMax[E Lanes](w Width, dst, a, b []E) {
	if simdBinary(OpMax, w, dst, a, b) {
		return
	}
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// VXor sets dst = a ^ b on the lane bit patterns.
func VXor[E Lanes](w Width, dst, a, b []E) {
	for i := range dst {
		dst[i] = XorLane(a[i], b[i])
	}
}

// VAnd sets dst = a & b on the lane bit patterns.
func VAnd[E Lanes](w Width, dst, a, b []E) {
	for i := range dst {
		dst[i] = fromBits[E](bitsOf(a[i]) & bitsOf(b[i]))
	}
}

// VShl shifts each lane of a left by the matching lane of counts. Counts
// are read as unsigned; a count of the lane width or more gives 0.
func VShl[E Integers](w Width, dst, a, counts []E) {
	for i := range dst {
		dst[i] = a[i] << uint64(counts[i])
	}
}

// VShr shifts each lane of a right by the matching lane of counts:
// arithmetic for signed lanes, logical for unsigned. Counts are read as
// unsigned; a count of the lane width or more gives 0, or -1 for negative
// signed lanes.
func VShr[E Integers](w Width, dst, a, counts []E) {
	for i := range dst {
		dst[i] = a[i] >> uint64(counts[i])
	}
}

// VAbs sets dst = |a|. Float lanes clear the sign bit; integer lanes wrap,
// so the minimum value maps to itself.
func VAbs[E SignedLanes](w Width, dst, a []E) {
	for i := range dst {
		dst[i] = AbsLane(a[i])
	}
}

// VFloor rounds each lane toward negative infinity.
func VFloor[E Floats](w Width, dst, a []E) {
	for i := range dst {
		dst[i] = E(math.Floor(float64(a[i])))
	}
}

// VCeil rounds each lane toward positive infinity.
func VCeil[E Floats](w Width, dst, a []E) {
	for i := range dst {
		dst[i] = E(math.Ceil(float64(a[i])))
	}
}

// VRound rounds each lane to the nearest integer, ties to even.
func VRound[E Floats](w Width, dst, a []E) {
	for i := range dst {
		dst[i] = E(math.RoundToEven(float64(a[i])))
	}
}

// VCmp sets each lane of dst to all ones where the predicate holds and to
// zero elsewhere.
func VCmp[E Lanes](w Width, p ComparePred, dst, a, b []E) {
	ones := fromBits[E](math.MaxUint64)
	var zero E
	for i := range dst {
		if compareLane(p, a[i], b[i]) {
			dst[i] = ones
		} else {
			dst[i] = zero
		}
	}
}

// VMoveMask gathers the sign bit of each lane into a bitmask, lane 0 in
// bit 0.
func VMoveMask[E Lanes](w Width, m []E) uint64 {
	top := laneBits[E]() - 1
	var bits uint64
	for i := range m {
		bits |= (bitsOf(m[i]) >> top & 1) << uint(i)
	}
	return bits
}

// VCmpMask compares a and b and returns the bitmask of lanes where the
// predicate holds.
func VCmpMask[E Lanes](w Width, p ComparePred, a, b []E) uint64 {
	if bits, ok := simdCmpMask(p, w, a, b); ok {
		return bits
	}
	var buf [64]E
	m := buf[:len(a)]
	VCmp(w, p, m, a, b)
	return VMoveMask(w, m)
}

// VSelect sets dst[i] = a[i] where the sign bit of mask[i] is set and b[i]
// elsewhere.
func VSelect[E Lanes](w Width, dst, mask, a, b []E) {
	top := laneBits[E]() - 1
	for i := range dst {
		if bitsOf(mask[i])>>top&1 != 0 {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// VSatAdd sets dst = a + b saturated to the lane range.
func VSatAdd[E Integers](w Width, dst, a, b []E) {
	for i := range dst {
		dst[i] = SatAddLane(a[i], b[i])
	}
}

// VSatSub sets dst = a - b saturated to the lane range.
func VSatSub[E Integers](w Width, dst, a, b []E) {
	for i := range dst {
		dst[i] = SatSubLane(a[i], b[i])
	}
}

// VPow sets dst = base ** exp. Integer lanes use repeated squaring and
// wrap; the loop consumes one exponent bit per round, so it ends after at
// most the lane width in rounds. Negative signed exponents give 0. Float
// lanes use math.Pow.
func VPow[E Lanes](w Width, dst, base, exp []E) {
	for i := range dst {
		dst[i] = PowLane(base[i], exp[i])
	}
}

// PowLane is the lane form of VPow.
func PowLane[E Lanes](b, e E) E {
	k := KindOf[E]()
	if k.IsFloat() {
		return E(math.Pow(float64(b), float64(e)))
	}
	var zero E
	if e < zero {
		return zero
	}
	r, x, n := uint64(1), toCarrier(b), toCarrier(e)
	for round := k.Bits(); round > 0 && n != 0; round-- {
		if n&1 != 0 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return fromCarrier[E](r)
}

// XorLane returns a ^ b on the lane bit patterns.
func XorLane[E Lanes](a, b E) E {
	return fromBits[E](bitsOf(a) ^ bitsOf(b))
}

// AbsLane is the lane form of VAbs.
func AbsLane[E SignedLanes](a E) E {
	if KindOf[E]().IsFloat() {
		return fromBits[E](bitsOf(a) &^ (1 << (laneBits[E]() - 1)))
	}
	if a < 0 {
		return -a
	}
	return a
}
