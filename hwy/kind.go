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

// Kind identifies the element type held in a lane. Kinds are characterized
// by width (1, 2, 4 or 8 bytes), signedness and category.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no lane type maps to it.
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	numKinds
)

// AllKinds lists every valid lane kind in declaration order.
var AllKinds = [...]Kind{
	KindInt8, KindInt16, KindInt32, KindInt64,
	KindUint8, KindUint16, KindUint32, KindUint64,
	KindFloat32, KindFloat64,
}

// Category groups kinds by how their numeric semantics behave.
type Category uint8

const (
	CategoryInvalid Category = iota
	CategoryInt
	CategoryFloat32
	CategoryFloat64
)

var kindNames = [numKinds]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the Go spelling of the kind ("int8", "float32", ...).
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Valid reports whether k names a lane type.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < numKinds
}

// Size returns the lane size in bytes, or 0 for an invalid kind.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	}
	return 0
}

// Bits returns the lane width in bits.
func (k Kind) Bits() int {
	return k.Size() * 8
}

// Signed reports whether the kind carries a sign (signed ints and floats).
func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64, KindFloat32, KindFloat64:
		return true
	}
	return false
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindUint64
}

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Category returns the semantic category of the kind.
func (k Kind) Category() Category {
	switch {
	case k.IsInteger():
		return CategoryInt
	case k == KindFloat32:
		return CategoryFloat32
	case k == KindFloat64:
		return CategoryFloat64
	}
	return CategoryInvalid
}

// IntKind returns the integer kind with the given size and signedness.
// It returns KindInvalid for sizes other than 1, 2, 4 and 8.
func IntKind(size int, signed bool) Kind {
	var k Kind
	switch size {
	case 1:
		k = KindInt8
	case 2:
		k = KindInt16
	case 4:
		k = KindInt32
	case 8:
		k = KindInt64
	default:
		return KindInvalid
	}
	if !signed {
		k += KindUint8 - KindInt8
	}
	return k
}

// MinInt returns the smallest value of an integer kind as an int64.
// Unsigned kinds return 0.
func (k Kind) MinInt() int64 {
	switch k {
	case KindInt8:
		return math.MinInt8
	case KindInt16:
		return math.MinInt16
	case KindInt32:
		return math.MinInt32
	case KindInt64:
		return math.MinInt64
	}
	return 0
}

// MaxUint returns the largest value of an integer kind as a uint64.
func (k Kind) MaxUint() uint64 {
	switch k {
	case KindInt8:
		return math.MaxInt8
	case KindInt16:
		return math.MaxInt16
	case KindInt32:
		return math.MaxInt32
	case KindInt64:
		return math.MaxInt64
	case KindUint8:
		return math.MaxUint8
	case KindUint16:
		return math.MaxUint16
	case KindUint32:
		return math.MaxUint32
	case KindUint64:
		return math.MaxUint64
	}
	return 0
}

// KindOf classifies the lane type T. Types defined over a lane type
// (type Celsius float32) classify like their underlying type.
func KindOf[T Lanes]() Kind {
	var zero T
	size := int(unsafe.Sizeof(zero))
	one := T(1)
	if one/(one+one) != zero {
		if size == 4 {
			return KindFloat32
		}
		return KindFloat64
	}
	// Unsigned types wrap below zero.
	return IntKind(size, zero-one < zero)
}

// IsInt8 reports whether T is an 8-bit signed integer.
func IsInt8[T Lanes]() bool { return KindOf[T]() == KindInt8 }

// IsInt16 reports whether T is a 16-bit signed integer.
func IsInt16[T Lanes]() bool { return KindOf[T]() == KindInt16 }

// IsInt32 reports whether T is a 32-bit signed integer.
func IsInt32[T Lanes]() bool { return KindOf[T]() == KindInt32 }

// IsInt64 reports whether T is a 64-bit signed integer.
func IsInt64[T Lanes]() bool { return KindOf[T]() == KindInt64 }

// IsUint8 reports whether T is an 8-bit unsigned integer.
func IsUint8[T Lanes]() bool { return KindOf[T]() == KindUint8 }

// IsUint16 reports whether T is a 16-bit unsigned integer.
func IsUint16[T Lanes]() bool { return KindOf[T]() == KindUint16 }

// IsUint32 reports whether T is a 32-bit unsigned integer.
func IsUint32[T Lanes]() bool { return KindOf[T]() == KindUint32 }

// IsUint64 reports whether T is a 64-bit unsigned integer.
func IsUint64[T Lanes]() bool { return KindOf[T]() == KindUint64 }

// IsFloat32 reports whether T is a single-precision float.
func IsFloat32[T Lanes]() bool { return KindOf[T]() == KindFloat32 }

// IsFloat64 reports whether T is a double-precision float.
func IsFloat64[T Lanes]() bool { return KindOf[T]() == KindFloat64 }

// IsSigned reports whether T is a signed integer.
func IsSigned[T Lanes]() bool {
	k := KindOf[T]()
	return k.IsInteger() && k.Signed()
}

// IsUnsigned reports whether T is an unsigned integer.
func IsUnsigned[T Lanes]() bool {
	k := KindOf[T]()
	return k.IsInteger() && !k.Signed()
}

// IsInteger reports whether T is any integer type.
func IsInteger[T Lanes]() bool { return KindOf[T]().IsInteger() }

// IsReal reports whether T is float32 or float64.
func IsReal[T Lanes]() bool { return KindOf[T]().IsFloat() }

// IsRegister reports whether v is one of the register types
// Vec128, Vec256 or Vec512, of any lane type.
func IsRegister(v any) bool {
	_, ok := v.(registerValue)
	return ok
}

// IsRegisterOf reports whether v is a register of width class w.
func IsRegisterOf(v any, w Width) bool {
	r, ok := v.(registerValue)
	return ok && r.Width() == w
}
