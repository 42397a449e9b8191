package arith

import (
	"math"
	"testing"

	"github.com/ajroetker/hwyarith/hwy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var negZero = math.Copysign(0, -1)

func TestRounding_Specials(t *testing.T) {
	in := []float64{-2.5, -1.5, -0.5, negZero, 0.5, 1.5, 2.5, 3.7, -3.7, math.Inf(1), math.Inf(-1), math.NaN(), 1<<52 + 1, -(1 << 60)}
	tests := []struct {
		name string
		f    func(*hwy.Target, hwy.Operand[float64]) hwy.Operand[float64]
		want []float64
	}{
		{"Floor", Floor[float64, float64], []float64{-3, -2, -1, negZero, 0, 1, 2, 3, -4, math.Inf(1), math.Inf(-1), math.NaN(), 1<<52 + 1, -(1 << 60)}},
		{"Ceil", Ceil[float64, float64], []float64{-2, -1, negZero, negZero, 1, 2, 3, 4, -3, math.Inf(1), math.Inf(-1), math.NaN(), 1<<52 + 1, -(1 << 60)}},
		{"Round", Round[float64, float64], []float64{-2, -2, negZero, negZero, 0, 2, 2, 4, -4, math.Inf(1), math.Inf(-1), math.NaN(), 1<<52 + 1, -(1 << 60)}},
	}
	for _, tt := range tests {
		for _, l := range hwy.AllLevels {
			got := hwy.ToSlice(tt.f(hwy.TargetFor(l), hwy.ArrayOf(in)))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("%s on %s mismatch (-want +got):\n%s", tt.name, l, diff)
			}
			// cmp treats -0 and 0 as equal; check the sign separately.
			for i := range got {
				if tt.want[i] == 0 && math.Signbit(got[i]) != math.Signbit(tt.want[i]) {
					t.Errorf("%s on %s: %v gives %v, want %v", tt.name, l, in[i], got[i], tt.want[i])
				}
			}
		}
	}
}

func TestRounding_Float32(t *testing.T) {
	in := hwy.ArrayOf([]float32{-1.25, 0.75, 2.5, 1e10})
	for _, l := range hwy.AllLevels {
		target := hwy.TargetFor(l)
		if diff := cmp.Diff([]float32{-2, 0, 2, 1e10}, hwy.ToSlice(Floor[float32](target, in))); diff != "" {
			t.Errorf("%s Floor mismatch (-want +got):\n%s", l, diff)
		}
		if diff := cmp.Diff([]float32{-1, 1, 3, 1e10}, hwy.ToSlice(Ceil[float32](target, in))); diff != "" {
			t.Errorf("%s Ceil mismatch (-want +got):\n%s", l, diff)
		}
		if diff := cmp.Diff([]float32{-1, 1, 2, 1e10}, hwy.ToSlice(Round[float32](target, in))); diff != "" {
			t.Errorf("%s Round mismatch (-want +got):\n%s", l, diff)
		}
	}

	// Integer operands convert to the float kind first.
	got := Round[float64](nil, hwy.ArrayOf([]int16{-3, 7}))
	if diff := cmp.Diff([]float64{-3, 7}, hwy.ToSlice(got)); diff != "" {
		t.Errorf("int16 Round mismatch (-want +got):\n%s", diff)
	}
}

func TestAbs(t *testing.T) {
	for _, l := range hwy.AllLevels {
		target := hwy.TargetFor(l)
		ints := Abs[int8](target, hwy.ArrayOf([]int8{-1, 5, math.MinInt8, 0}))
		if diff := cmp.Diff([]int8{1, 5, math.MinInt8, 0}, hwy.ToSlice(ints)); diff != "" {
			t.Errorf("%s int8 mismatch (-want +got):\n%s", l, diff)
		}
		floats := hwy.ToSlice(Abs[float64](target, hwy.ArrayOf([]float64{-2.5, negZero, math.Inf(-1)})))
		if floats[0] != 2.5 || math.Signbit(floats[1]) || !math.IsInf(floats[2], 1) {
			t.Errorf("%s float64 Abs = %v", l, floats)
		}
		// Unsigned operands widen into a signed kind first.
		wide := Abs[int32](target, hwy.ArrayOf([]uint16{65535}))
		if wide.Lane(0) != 65535 {
			t.Errorf("%s uint16 as int32 Abs = %d", l, wide.Lane(0))
		}
	}
	if s := Abs[int64](nil, hwy.ScalarOf[int64](-9)); s.Form() != hwy.FormScalar || s.Lane(0) != 9 {
		t.Errorf("scalar Abs = %v (%s)", s.Lane(0), s.Form())
	}
}
