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

// Lanes travel through the conversion matrix in a 64-bit carrier: signed
// integers sign-extended to int64, unsigned integers zero-extended, floats
// as the bits of the equivalent float64 (float32 to float64 is exact).

func toCarrier[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch KindOf[T]() {
	case KindInt8:
		return uint64(int64(*(*int8)(p)))
	case KindInt16:
		return uint64(int64(*(*int16)(p)))
	case KindInt32:
		return uint64(int64(*(*int32)(p)))
	case KindInt64:
		return uint64(*(*int64)(p))
	case KindUint8:
		return uint64(*(*uint8)(p))
	case KindUint16:
		return uint64(*(*uint16)(p))
	case KindUint32:
		return uint64(*(*uint32)(p))
	case KindUint64:
		return *(*uint64)(p)
	case KindFloat32:
		return math.Float64bits(float64(*(*float32)(p)))
	}
	return math.Float64bits(*(*float64)(p))
}

func fromCarrier[T Lanes](c uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch KindOf[T]() {
	case KindInt8:
		*(*int8)(p) = int8(c)
	case KindInt16:
		*(*int16)(p) = int16(c)
	case KindInt32:
		*(*int32)(p) = int32(c)
	case KindInt64:
		*(*int64)(p) = int64(c)
	case KindUint8:
		*(*uint8)(p) = uint8(c)
	case KindUint16:
		*(*uint16)(p) = uint16(c)
	case KindUint32:
		*(*uint32)(p) = uint32(c)
	case KindUint64:
		*(*uint64)(p) = c
	case KindFloat32:
		*(*float32)(p) = float32(math.Float64frombits(c))
	default:
		*(*float64)(p) = math.Float64frombits(c)
	}
	return x
}

// ConvertLane converts one value with the lane semantics of the conversion
// matrix:
//
//   - widening follows the source signedness (sign or zero extension);
//   - same-width 8, 16 and 32-bit integers of opposite signedness
//     reinterpret the bits;
//   - int64 and uint64 saturate into each other, since no register
//     conversion exists between them;
//   - narrowing integers saturate to the destination range;
//   - integers to floats round to nearest even;
//   - floats to integers truncate toward zero and saturate, NaN gives 0;
//   - float64 to float32 rounds to nearest even.
//
// The fallback evaluator casts lanes with ConvertLane, so both paths agree
// on every conversion the matrix defines.
func ConvertLane[To, From Lanes](x From) To {
	return fromCarrier[To](convertCarrier(KindOf[From](), KindOf[To](), toCarrier(x)))
}

func convertCarrier(from, to Kind, c uint64) uint64 {
	if from == to {
		return c
	}
	switch {
	case from.IsFloat() && to.IsFloat():
		if to == KindFloat32 {
			return math.Float64bits(float64(float32(math.Float64frombits(c))))
		}
		return c
	case from.IsFloat():
		return floatToInt(math.Float64frombits(c), to)
	case to.IsFloat():
		return intToFloat(from, to, c)
	}
	return intToInt(from, to, c)
}

// normalize re-reads the low bits of c as a lane of kind k.
func normalize(k Kind, c uint64) uint64 {
	shift := uint(64 - k.Bits())
	if k.Signed() {
		return uint64(int64(c<<shift) >> shift)
	}
	return c << shift >> shift
}

func intToInt(from, to Kind, c uint64) uint64 {
	if from.Size() == 8 && to.Size() == 8 {
		// int64 <-> uint64: the carriers agree up to MaxInt64.
		if int64(c) < 0 {
			if from.Signed() {
				return 0
			}
			return math.MaxInt64
		}
		return c
	}
	if to.Size() >= from.Size() {
		return normalize(to, c)
	}
	if !from.Signed() {
		return min(c, to.MaxUint())
	}
	v := int64(c)
	lo := to.MinInt()
	return uint64(clamp(v, lo, int64(to.MaxUint())))
}

func intToFloat(from, to Kind, c uint64) uint64 {
	var f float64
	switch {
	case from.Signed() && to == KindFloat32:
		f = float64(float32(int64(c)))
	case from.Signed():
		f = float64(int64(c))
	case to == KindFloat32:
		f = float64(float32(c))
	default:
		f = float64(c)
	}
	return math.Float64bits(f)
}

func floatToInt(f float64, to Kind) uint64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if to.Signed() {
		lo := float64(to.MinInt())
		switch {
		case f < lo:
			return uint64(to.MinInt())
		case f >= -lo:
			return to.MaxUint()
		}
		return uint64(int64(f))
	}
	switch {
	case f <= 0:
		return 0
	case f >= math.Ldexp(1, to.Bits()):
		return to.MaxUint()
	}
	return uint64(f)
}

// 2^52 + 2^51: adding it to a float64 of magnitude below 2^51 places the
// integer part in the low mantissa bits.
const (
	magicBias     = 6755399441055744.0
	magicBiasBits = 0x4338000000000000
)

// biasToFloat converts a 64-bit integer carrier to float64 with the bias
// trick. Exact for magnitudes below 2^51; other inputs give unspecified
// values, as the instruction sequence does.
func biasToFloat(c uint64) uint64 {
	return math.Float64bits(math.Float64frombits(c+magicBiasBits) - magicBias)
}

// biasFromFloat truncates a float64 carrier and converts it to a 64-bit
// integer carrier with the bias trick, with the same range restriction.
func biasFromFloat(c uint64) uint64 {
	f := math.Trunc(math.Float64frombits(c))
	return math.Float64bits(f+magicBias) - magicBiasBits
}
