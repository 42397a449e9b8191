package arith

import (
	"testing"

	"github.com/ajroetker/hwyarith/hwy"
)

// Benchmarks

var benchLevels = []hwy.DispatchLevel{hwy.DispatchScalar, hwy.DispatchAVX2}

func BenchmarkAdd_F32x8(b *testing.B) {
	lhs := hwy.ArrayOf([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	rhs := hwy.ArrayOf([]float32{8, 7, 6, 5, 4, 3, 2, 1})
	for _, l := range benchLevels {
		target := hwy.TargetFor(l)
		b.Run(l.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Add[float32](target, lhs, rhs)
			}
		})
	}
}

func BenchmarkMultiply_U8x16(b *testing.B) {
	lhs := hwy.ArrayOf([]uint8{1, 20, 3, 40, 5, 60, 7, 80, 9, 100, 11, 120, 13, 140, 15, 160})
	rhs := hwy.ScalarOf[uint8](3)
	for _, l := range benchLevels {
		target := hwy.TargetFor(l)
		b.Run(l.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Multiply[uint8](target, lhs, rhs)
			}
		})
	}
}

func BenchmarkDivide_F64x4(b *testing.B) {
	lhs := hwy.ArrayOf([]float64{1, 2, 3, 4})
	rhs := hwy.ArrayOf([]float64{4, 3, 2, 1})
	for _, l := range benchLevels {
		target := hwy.TargetFor(l)
		b.Run(l.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Divide[float64](target, lhs, rhs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEquals_I32x8(b *testing.B) {
	lhs := hwy.ArrayOf([]int32{1, 2, 3, 4, 5, 6, 7, 8})
	rhs := hwy.ArrayOf([]int32{1, 0, 3, 0, 5, 0, 7, 0})
	for _, l := range benchLevels {
		target := hwy.TargetFor(l)
		b.Run(l.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Equals(target, lhs, rhs)
			}
		})
	}
}
