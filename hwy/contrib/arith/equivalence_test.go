package arith

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/hwyarith/hwy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// The native path must agree with the fallback evaluator lane for lane on
// every dispatch level.

type binaryFunc[O hwy.Lanes] func(*hwy.Target, hwy.Operand[O], hwy.Operand[O]) hwy.Operand[O]

type unaryFunc[O hwy.Lanes] func(*hwy.Target, hwy.Operand[O]) hwy.Operand[O]

type laneGen[O hwy.Lanes] func(r *rand.Rand) O

func randLane[O hwy.Lanes](r *rand.Rand) O {
	if hwy.IsReal[O]() {
		return O(r.NormFloat64() * 1000)
	}
	return O(r.Uint64())
}

func nonZeroLane[O hwy.Lanes](r *rand.Rand) O {
	for {
		if v := randLane[O](r); v != 0 {
			return v
		}
	}
}

func smallExponent[O hwy.Lanes](r *rand.Rand) O {
	if hwy.IsReal[O]() {
		return O(r.Float64() * 4)
	}
	return O(r.IntN(70))
}

func shiftCount[O hwy.Lanes](r *rand.Rand) O {
	bits := hwy.KindOf[O]().Bits()
	return O(r.IntN(bits+5) - 2)
}

func halves[O hwy.Lanes](r *rand.Rand) O {
	return O(float64(r.IntN(400)-200) / 4)
}

func randSlice[O hwy.Lanes](r *rand.Rand, n int, gen laneGen[O]) []O {
	s := make([]O, n)
	for i := range s {
		s[i] = gen(r)
	}
	return s
}

var sweepLengths = []int{1, 3, 4, 8, 17, 64}

// Power and XOr can produce NaN lanes; both paths must produce them in the
// same places.
var equateNaNs = cmpopts.EquateNaNs()

func checkBinary[O hwy.Lanes](t *testing.T, id hwy.OpID, f binaryFunc[O], genA, genB laneGen[O]) {
	t.Helper()
	r := rand.New(rand.NewPCG(uint64(id), uint64(hwy.KindOf[O]())))
	scalar := hwy.TargetFor(hwy.DispatchScalar)
	for _, n := range sweepLengths {
		a, b := randSlice(r, n, genA), randSlice(r, n, genB)
		s := genB(r)
		want := hwy.ToSlice(f(scalar, hwy.ArrayOf(a), hwy.ArrayOf(b)))
		wantS := hwy.ToSlice(f(scalar, hwy.ArrayOf(a), hwy.ScalarOf(s)))
		for _, l := range hwy.AllLevels {
			target := hwy.TargetFor(l)
			if diff := cmp.Diff(want, hwy.ToSlice(f(target, hwy.ArrayOf(a), hwy.ArrayOf(b))), equateNaNs); diff != "" {
				t.Errorf("%s %s on %s, %d lanes (-fallback +%s):\n%s", id, hwy.KindOf[O](), l, n, l, diff)
			}
			if diff := cmp.Diff(wantS, hwy.ToSlice(f(target, hwy.ArrayOf(a), hwy.ScalarOf(s))), equateNaNs); diff != "" {
				t.Errorf("%s %s on %s, %d lanes and a scalar (-fallback +%s):\n%s", id, hwy.KindOf[O](), l, n, l, diff)
			}
		}
	}

	// Full registers stay registers when the operation is native.
	avx512 := hwy.TargetFor(hwy.DispatchAVX512)
	n := hwy.LanesOf[O](hwy.Width512)
	lhs := hwy.Load[O, hwy.Vec512[O]](randSlice(r, n, genA), 0)
	rhs := hwy.Load[O, hwy.Vec512[O]](randSlice(r, n, genB), 1)
	got := f(avx512, lhs, rhs)
	native := hwy.ExplainBinary[O, O, O](avx512, id, lhs, rhs).Native
	if native != (got.Form() == hwy.FormRegister) {
		t.Errorf("%s %s on registers: native %v but result is a %s", id, hwy.KindOf[O](), native, got.Form())
	}
	want := hwy.ToSlice(f(scalar, lhs, rhs))
	if diff := cmp.Diff(want, hwy.ToSlice(got), equateNaNs); diff != "" {
		t.Errorf("%s %s on registers (-fallback +avx512):\n%s", id, hwy.KindOf[O](), diff)
	}
}

func checkUnary[O hwy.Lanes](t *testing.T, id hwy.OpID, f unaryFunc[O], gen laneGen[O]) {
	t.Helper()
	r := rand.New(rand.NewPCG(uint64(id), uint64(hwy.KindOf[O]())))
	scalar := hwy.TargetFor(hwy.DispatchScalar)
	for _, n := range sweepLengths {
		a := randSlice(r, n, gen)
		want := hwy.ToSlice(f(scalar, hwy.ArrayOf(a)))
		for _, l := range hwy.AllLevels {
			if diff := cmp.Diff(want, hwy.ToSlice(f(hwy.TargetFor(l), hwy.ArrayOf(a))), equateNaNs); diff != "" {
				t.Errorf("%s %s on %s, %d lanes (-fallback +%s):\n%s", id, hwy.KindOf[O](), l, n, l, diff)
			}
		}
	}
	avx512 := hwy.TargetFor(hwy.DispatchAVX512)
	v := hwy.Load[O, hwy.Vec512[O]](randSlice(r, hwy.LanesOf[O](hwy.Width512), gen), 0)
	got := f(avx512, v)
	if native := hwy.ExplainUnary[O, O](avx512, id, v).Native; native != (got.Form() == hwy.FormRegister) {
		t.Errorf("%s %s on a register: native %v but result is a %s", id, hwy.KindOf[O](), native, got.Form())
	}
	if diff := cmp.Diff(hwy.ToSlice(f(scalar, v)), hwy.ToSlice(got), equateNaNs); diff != "" {
		t.Errorf("%s %s on a register (-fallback +avx512):\n%s", id, hwy.KindOf[O](), diff)
	}
}

func mustDivide[O hwy.Lanes](t *hwy.Target, lhs, rhs hwy.Operand[O]) hwy.Operand[O] {
	r, err := Divide[O](t, lhs, rhs)
	if err != nil {
		panic(err)
	}
	return r
}

func testCommonOps[O hwy.Lanes](t *testing.T) {
	checkBinary(t, hwy.OpAdd, Add[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpSub, Subtract[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpMul, Multiply[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpDiv, mustDivide[O], randLane[O], nonZeroLane[O])
	checkBinary(t, hwy.OpPow, Power[O, O, O], randLane[O], smallExponent[O])
	checkBinary(t, hwy.OpMin, Min[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpMax, Max[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpXor, XOr[O, O, O], randLane[O], randLane[O])
}

func testIntegerOps[O hwy.Integers](t *testing.T) {
	testCommonOps[O](t)
	checkBinary(t, hwy.OpSatAdd, SaturatedAdd[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpSatSub, SaturatedSub[O, O, O], randLane[O], randLane[O])
	checkBinary(t, hwy.OpShl, ShiftLeft[O, O, O], randLane[O], shiftCount[O])
	checkBinary(t, hwy.OpShr, ShiftRight[O, O, O], randLane[O], shiftCount[O])
}

func testSignedIntegerOps[O hwy.SignedInts](t *testing.T) {
	testIntegerOps[O](t)
	checkUnary(t, hwy.OpAbs, Abs[O, O], randLane[O])
}

func testFloatOps[O hwy.Floats](t *testing.T) {
	testCommonOps[O](t)
	checkUnary(t, hwy.OpAbs, Abs[O, O], randLane[O])
	checkUnary(t, hwy.OpFloor, Floor[O, O], halves[O])
	checkUnary(t, hwy.OpCeil, Ceil[O, O], halves[O])
	checkUnary(t, hwy.OpRound, Round[O, O], halves[O])
}

func TestNativeMatchesFallback(t *testing.T) {
	t.Run("int8", testSignedIntegerOps[int8])
	t.Run("int16", testSignedIntegerOps[int16])
	t.Run("int32", testSignedIntegerOps[int32])
	t.Run("int64", testSignedIntegerOps[int64])
	t.Run("uint8", testIntegerOps[uint8])
	t.Run("uint16", testIntegerOps[uint16])
	t.Run("uint32", testIntegerOps[uint32])
	t.Run("uint64", testIntegerOps[uint64])
	t.Run("float32", testFloatOps[float32])
	t.Run("float64", testFloatOps[float64])
}

func TestCompareMatchesFallback(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	a := randSlice(r, 19, randLane[uint16])
	b := randSlice(r, 19, randLane[int32])
	b[3] = int32(a[3])
	ops := []struct {
		name string
		f    func(*hwy.Target, hwy.Operand[uint16], hwy.Operand[int32]) hwy.Mask
	}{
		{"Equals", Equals[uint16, int32]},
		{"Greater", Greater[uint16, int32]},
		{"Lesser", Lesser[uint16, int32]},
		{"EqualsOrGreater", EqualsOrGreater[uint16, int32]},
		{"EqualsOrLesser", EqualsOrLesser[uint16, int32]},
	}
	for _, op := range ops {
		want := op.f(hwy.TargetFor(hwy.DispatchScalar), hwy.ArrayOf(a), hwy.ArrayOf(b))
		for _, l := range hwy.AllLevels {
			got := op.f(hwy.TargetFor(l), hwy.ArrayOf(a), hwy.ArrayOf(b))
			if !hwy.MaskEqual(got, want) {
				t.Errorf("%s on %s: got %s, want %s", op.name, l, got, want)
			}
		}
	}
}

// boundedLane draws lanes small enough for every conversion route, the
// 64-bit bias trick included.
func boundedLane[O hwy.Lanes](r *rand.Rand) O {
	if hwy.IsReal[O]() {
		return O(r.NormFloat64() * 1000)
	}
	if hwy.IsSigned[O]() {
		return O(r.Int64N(1<<20) - 1<<19)
	}
	return O(r.Int64N(1 << 20))
}

type mixedFunc[O, A, B hwy.Lanes] func(*hwy.Target, hwy.Operand[A], hwy.Operand[B]) hwy.Operand[O]

// checkMixed runs operands of kinds A and B through the conversion routes
// into O and compares every level with the fallback.
func checkMixed[O, A, B hwy.Lanes](t *testing.T) {
	ops := []struct {
		id hwy.OpID
		f  mixedFunc[O, A, B]
	}{
		{hwy.OpAdd, Add[O, A, B]},
		{hwy.OpSub, Subtract[O, A, B]},
		{hwy.OpMul, Multiply[O, A, B]},
		{hwy.OpMin, Min[O, A, B]},
		{hwy.OpMax, Max[O, A, B]},
	}
	r := rand.New(rand.NewPCG(uint64(hwy.KindOf[A]()), uint64(hwy.KindOf[B]())<<8|uint64(hwy.KindOf[O]())))
	scalar := hwy.TargetFor(hwy.DispatchScalar)
	for _, op := range ops {
		for _, n := range sweepLengths {
			a, b := randSlice(r, n, boundedLane[A]), randSlice(r, n, boundedLane[B])
			want := hwy.ToSlice(op.f(scalar, hwy.ArrayOf(a), hwy.ArrayOf(b)))
			for _, l := range hwy.AllLevels {
				got := hwy.ToSlice(op.f(hwy.TargetFor(l), hwy.ArrayOf(a), hwy.ArrayOf(b)))
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s on %s, %d lanes (-fallback +%s):\n%s", op.id, l, n, l, diff)
				}
			}
		}
	}

	a, b := randSlice(r, 17, boundedLane[A]), randSlice(r, 17, boundedLane[B])
	want := Greater(scalar, hwy.ArrayOf(a), hwy.ArrayOf(b))
	for _, l := range hwy.AllLevels {
		if got := Greater(hwy.TargetFor(l), hwy.ArrayOf(a), hwy.ArrayOf(b)); !hwy.MaskEqual(got, want) {
			t.Errorf("Greater on %s: got %s, want %s", l, got, want)
		}
	}
}

func TestMixedKindsMatchFallback(t *testing.T) {
	t.Run("float64,uint8->int8", checkMixed[int8, float64, uint8])
	t.Run("float32,int16->uint16", checkMixed[uint16, float32, int16])
	t.Run("uint32,int32->float32", checkMixed[float32, uint32, int32])
	t.Run("int32,uint32->uint8", checkMixed[uint8, int32, uint32])
	t.Run("int8,uint16->int32", checkMixed[int32, int8, uint16])
	t.Run("uint8,float32->float64", checkMixed[float64, uint8, float32])
	t.Run("int64,int32->float64", checkMixed[float64, int64, int32])
	t.Run("float64,int64->int64", checkMixed[int64, float64, int64])
	t.Run("uint16,int8->int16", checkMixed[int16, uint16, int8])
	t.Run("uint64,int64->int64", checkMixed[int64, uint64, int64])
}
