package hwy

import "testing"

type celsius float32

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		got  Kind
		want Kind
	}{
		{"int8", KindOf[int8](), KindInt8},
		{"int16", KindOf[int16](), KindInt16},
		{"int32", KindOf[int32](), KindInt32},
		{"int64", KindOf[int64](), KindInt64},
		{"uint8", KindOf[uint8](), KindUint8},
		{"uint16", KindOf[uint16](), KindUint16},
		{"uint32", KindOf[uint32](), KindUint32},
		{"uint64", KindOf[uint64](), KindUint64},
		{"float32", KindOf[float32](), KindFloat32},
		{"float64", KindOf[float64](), KindFloat64},
		{"celsius", KindOf[celsius](), KindFloat32},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("KindOf[%s]() = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestKindProperties(t *testing.T) {
	for _, k := range AllKinds {
		if !k.Valid() {
			t.Errorf("%s: not valid", k)
		}
		if k.Bits() != 8*k.Size() {
			t.Errorf("%s: Bits() = %d, Size() = %d", k, k.Bits(), k.Size())
		}
		if k.IsInteger() == k.IsFloat() {
			t.Errorf("%s: IsInteger() = IsFloat() = %v", k, k.IsInteger())
		}
		if k.IsInteger() && IntKind(k.Size(), k.Signed()) != k {
			t.Errorf("IntKind(%d, %v) = %s, want %s", k.Size(), k.Signed(), IntKind(k.Size(), k.Signed()), k)
		}
	}
	if KindInvalid.Valid() || KindInvalid.Size() != 0 {
		t.Errorf("KindInvalid: Valid() = %v, Size() = %d", KindInvalid.Valid(), KindInvalid.Size())
	}
	if IntKind(3, true) != KindInvalid {
		t.Errorf("IntKind(3, true) = %s, want invalid", IntKind(3, true))
	}
	if got := KindFloat64.Category(); got != CategoryFloat64 {
		t.Errorf("KindFloat64.Category() = %d, want CategoryFloat64", got)
	}
	if got := KindUint16.Category(); got != CategoryInt {
		t.Errorf("KindUint16.Category() = %d, want CategoryInt", got)
	}
	if KindInt16.MinInt() != -32768 || KindInt16.MaxUint() != 32767 {
		t.Errorf("KindInt16 range = [%d, %d]", KindInt16.MinInt(), KindInt16.MaxUint())
	}
	if KindUint32.MinInt() != 0 || KindUint32.MaxUint() != 1<<32-1 {
		t.Errorf("KindUint32 range = [%d, %d]", KindUint32.MinInt(), KindUint32.MaxUint())
	}
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"IsInt8[int8]", IsInt8[int8](), true},
		{"IsInt8[uint8]", IsInt8[uint8](), false},
		{"IsUint16[uint16]", IsUint16[uint16](), true},
		{"IsInt64[int32]", IsInt64[int32](), false},
		{"IsFloat32[celsius]", IsFloat32[celsius](), true},
		{"IsFloat64[float32]", IsFloat64[float32](), false},
		{"IsSigned[int64]", IsSigned[int64](), true},
		{"IsSigned[float32]", IsSigned[float32](), false},
		{"IsUnsigned[uint32]", IsUnsigned[uint32](), true},
		{"IsUnsigned[int32]", IsUnsigned[int32](), false},
		{"IsInteger[uint64]", IsInteger[uint64](), true},
		{"IsInteger[float64]", IsInteger[float64](), false},
		{"IsReal[float64]", IsReal[float64](), true},
		{"IsReal[int8]", IsReal[int8](), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestIsRegister(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
		w    Width
	}{
		{"Vec128[int8]", Vec128[int8]{}, true, Width128},
		{"Vec256[float32]", Vec256[float32]{}, true, Width256},
		{"Vec512[uint64]", Vec512[uint64]{}, true, Width512},
		{"Array", ArrayOf([]int32{1, 2}), false, Width128},
		{"Scalar", ScalarOf[float64](1), false, Width128},
		{"int", 3, false, Width128},
	}
	for _, tt := range tests {
		if got := IsRegister(tt.v); got != tt.want {
			t.Errorf("IsRegister(%s) = %v, want %v", tt.name, got, tt.want)
		}
		if got := IsRegisterOf(tt.v, tt.w); got != tt.want {
			t.Errorf("IsRegisterOf(%s, %s) = %v, want %v", tt.name, tt.w, got, tt.want)
		}
	}
	if IsRegisterOf(Vec128[int8]{}, Width256) {
		t.Error("IsRegisterOf(Vec128, Width256) = true")
	}
}

func TestLanesOf(t *testing.T) {
	tests := []struct {
		got, want int
	}{
		{LanesOf[int8](Width128), 16},
		{LanesOf[float32](Width256), 8},
		{LanesOf[float64](Width256), 4},
		{LanesOf[uint16](Width512), 32},
		{LanesOf[int64](Width512), 8},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %d lanes, want %d", i, tt.got, tt.want)
		}
	}
	if Width512.Blocks() != 4 || Width256.Bits() != 256 {
		t.Errorf("Width512.Blocks() = %d, Width256.Bits() = %d", Width512.Blocks(), Width256.Bits())
	}
}
