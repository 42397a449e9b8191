package hwy

import "testing"

func TestLosslessTableMatchesRule(t *testing.T) {
	for _, a := range AllKinds {
		for _, b := range AllKinds {
			got, want := LosslessKind(a, b), LosslessRule(a, b)
			if got != want {
				t.Errorf("LosslessKind(%s, %s) = %s, rule says %s", a, b, got, want)
			}
			if got != LosslessKind(b, a) {
				t.Errorf("LosslessKind(%s, %s) = %s is not symmetric", a, b, got)
			}
		}
	}
}

func TestLosslessExamples(t *testing.T) {
	tests := []struct {
		a, b, want Kind
	}{
		{KindInt32, KindInt32, KindInt32},
		{KindInt8, KindUint8, KindInt16},
		{KindInt16, KindUint8, KindInt16},
		{KindInt8, KindUint16, KindInt32},
		{KindInt32, KindUint16, KindInt32},
		{KindInt8, KindUint32, KindInt64},
		{KindInt64, KindUint32, KindInt64},
		{KindUint64, KindInt8, KindInt64},
		{KindUint8, KindUint32, KindUint32},
		{KindInt16, KindInt64, KindInt64},
		{KindFloat32, KindInt16, KindFloat32},
		{KindFloat32, KindUint8, KindFloat32},
		{KindFloat32, KindInt32, KindFloat64},
		{KindFloat32, KindFloat64, KindFloat64},
		{KindFloat64, KindUint64, KindFloat64},
	}
	for _, tt := range tests {
		if got := LosslessKind(tt.a, tt.b); got != tt.want {
			t.Errorf("LosslessKind(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
	if got := Lossless[int8, uint8](); got != KindInt16 {
		t.Errorf("Lossless[int8, uint8]() = %s, want int16", got)
	}
	if got := LosslessKind(KindInvalid, KindInt8); got != KindInvalid {
		t.Errorf("LosslessKind(invalid, int8) = %s, want invalid", got)
	}
}

// Every integer pair except the documented uint64 cases fits its lossless
// kind; float results hold the integer exactly in the mantissa.
func TestLosslessRepresents(t *testing.T) {
	mantissa := map[Kind]int{KindFloat32: 24, KindFloat64: 53}
	for _, a := range AllKinds {
		for _, b := range AllKinds {
			r := LosslessKind(a, b)
			for _, k := range []Kind{a, b} {
				switch {
				case r.IsFloat() && k.IsInteger():
					if k.Size() == 8 {
						continue
					}
					if k.Bits() > mantissa[r] {
						t.Errorf("%s: %s does not fit the mantissa of %s", a, k, r)
					}
				case r.IsInteger():
					if k == KindUint64 && r != k {
						continue
					}
					if k.MinInt() < r.MinInt() || k.MaxUint() > r.MaxUint() {
						t.Errorf("LosslessKind(%s, %s) = %s does not hold %s", a, b, r, k)
					}
				case r == KindFloat32 && k == KindFloat64:
					t.Errorf("LosslessKind(%s, %s) = float32 drops float64", a, b)
				}
			}
		}
	}
}
