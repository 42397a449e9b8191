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

// OpID identifies an operation in the capability table.
type OpID uint8

const (
	OpAdd OpID = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMin
	OpMax
	OpEq
	OpGt
	OpLt
	OpGe
	OpLe
	OpShl
	OpShr
	OpXor
	OpAbs
	OpFloor
	OpCeil
	OpRound
	OpSatAdd
	OpSatSub

	numOps
)

var opNames = [numOps]string{
	OpAdd:    "Add",
	OpSub:    "Sub",
	OpMul:    "Mul",
	OpDiv:    "Div",
	OpPow:    "Pow",
	OpMin:    "Min",
	OpMax:    "Max",
	OpEq:     "Eq",
	OpGt:     "Gt",
	OpLt:     "Lt",
	OpGe:     "Ge",
	OpLe:     "Le",
	OpShl:    "Shl",
	OpShr:    "Shr",
	OpXor:    "Xor",
	OpAbs:    "Abs",
	OpFloor:  "Floor",
	OpCeil:   "Ceil",
	OpRound:  "Round",
	OpSatAdd: "SatAdd",
	OpSatSub: "SatSub",
}

// AllOps lists every operation identifier.
var AllOps = func() []OpID {
	ops := make([]OpID, numOps)
	for i := range ops {
		ops[i] = OpID(i)
	}
	return ops
}()

func (op OpID) String() string {
	if op >= numOps {
		return "invalid"
	}
	return opNames[op]
}

// buildCapTable fills t.native from t.features and t.widths.
func buildCapTable(t *Target) {
	for _, op := range AllOps {
		for _, w := range AllWidths {
			if !t.widths[w] {
				continue
			}
			for _, k := range AllKinds {
				t.native[op][w][k] = nativeRule(t.features, op, w, k)
			}
		}
	}
}

// nativeRule reports whether op on kind k at width w maps to an
// instruction sequence given the features f.
func nativeRule(f Features, op OpID, w Width, k Kind) bool {
	neon := f.Has(FeatureNEON)
	if !neon && !f.Has(FeatureSSE2) {
		return false
	}
	// Byte and word lanes in zmm registers come with AVX-512BW.
	if w == Width512 && k.Size() <= 2 && !f.Has(FeatureAVX512BW) {
		return false
	}
	ssse3 := f.Has(FeatureSSSE3)
	sse41 := f.Has(FeatureSSE41)
	sse42 := f.Has(FeatureSSE42)
	avx2 := f.Has(FeatureAVX2)
	avx512f := f.Has(FeatureAVX512F)
	int64Lane := k.IsInteger() && k.Size() == 8

	switch op {
	case OpAdd, OpSub, OpXor:
		return true

	case OpDiv:
		return k.IsFloat()

	case OpMul:
		return mulRule(f, k)

	case OpPow:
		switch k {
		case KindUint16, KindUint32, KindUint64:
			return mulRule(f, k)
		}
		return false

	case OpMin, OpMax:
		switch {
		case k.IsFloat():
			return true
		case neon:
			return !int64Lane
		case k == KindUint8, k == KindInt16:
			return true
		case int64Lane:
			return avx512f
		}
		return sse41

	case OpEq:
		if int64Lane && !neon {
			return sse41
		}
		return true

	case OpGt, OpLt, OpGe, OpLe:
		if int64Lane && !neon {
			return sse42
		}
		return true

	case OpShl, OpShr:
		if !k.IsInteger() {
			return false
		}
		if neon {
			return true
		}
		switch k.Size() {
		case 4, 8:
			return avx2
		case 2:
			return f.Has(FeatureAVX512BW)
		}
		return false

	case OpAbs:
		switch {
		case k.IsFloat():
			return true
		case !k.Signed():
			return false
		case neon:
			return true
		case k.Size() == 8:
			return avx512f
		}
		return ssse3

	case OpFloor, OpCeil, OpRound:
		return k.IsFloat() && (sse41 || neon)

	case OpSatAdd, OpSatSub:
		if !k.IsInteger() {
			return false
		}
		return neon || k.Size() <= 2
	}
	return false
}

func mulRule(f Features, k Kind) bool {
	if k.IsFloat() {
		return true
	}
	switch k.Size() {
	case 1, 2:
		// 8-bit lanes widen to 16 bits, multiply and narrow with saturation.
		return true
	case 4:
		return f.Has(FeatureSSE41) || f.Has(FeatureNEON)
	case 8:
		return f.Has(FeatureAVX512DQ)
	}
	return false
}
