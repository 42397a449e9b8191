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

import "fmt"

// BinaryOp describes a two-operand operation to the dispatch core.
type BinaryOp[E Lanes] struct {
	ID OpID
	// Native computes one register; dst, a and b hold LanesOf[E](w) lanes.
	// Lanes past the operands' overlap hold the default fill value.
	Native func(w Width, dst, a, b []E) error
	// Scalar computes one lane for the fallback evaluator.
	Scalar func(a, b E) (E, error)
}

// UnaryOp describes a one-operand operation to the dispatch core.
type UnaryOp[E Lanes] struct {
	ID     OpID
	Native func(w Width, dst, a []E) error
	Scalar func(a E) (E, error)
}

// Reason says which gate decided the path of a call.
type Reason uint8

const (
	ReasonNative Reason = iota
	ReasonScalarOperands
	ReasonNoLanes
	ReasonNoWidth
	ReasonNoInstruction
	ReasonNoLoad
	ReasonNoConversion
)

func (r Reason) String() string {
	switch r {
	case ReasonNative:
		return "native"
	case ReasonScalarOperands:
		return "scalar operands"
	case ReasonNoLanes:
		return "no lanes"
	case ReasonNoWidth:
		return "no register width"
	case ReasonNoInstruction:
		return "no native instruction"
	case ReasonNoLoad:
		return "operand does not load"
	case ReasonNoConversion:
		return "no register conversion"
	}
	return "unknown"
}

// Decision is the outcome of the dispatch gates for one call.
type Decision struct {
	Native bool
	Reason Reason
	Op     OpID
	// Kind is the computation kind.
	Kind Kind
	// Lanes is the overlap lane count of the operands.
	Lanes int
	// Width is the register width of the native path.
	Width Width
	// Operand is the kind of the operand that failed to load or convert.
	Operand Kind
}

func (d Decision) String() string {
	switch d.Reason {
	case ReasonNative:
		return fmt.Sprintf("%s %s: native, %d lanes at %s", d.Op, d.Kind, d.Lanes, d.Width)
	case ReasonScalarOperands, ReasonNoLanes:
		return fmt.Sprintf("%s %s: fallback, %s", d.Op, d.Kind, d.Reason)
	case ReasonNoWidth:
		return fmt.Sprintf("%s %s: fallback, no register holds %d lanes", d.Op, d.Kind, d.Lanes)
	case ReasonNoInstruction:
		return fmt.Sprintf("%s %s: fallback, no native instruction at %s", d.Op, d.Kind, d.Width)
	}
	return fmt.Sprintf("%s %s: fallback, %s (%s operand)", d.Op, d.Kind, d.Reason, d.Operand)
}

type operandProbe struct {
	kind Kind
	ok   bool
}

func probe[A Lanes](t *Target, op Operand[A], n int) operandProbe {
	_, ok := loadWidth(t, op, n)
	return operandProbe{kind: KindOf[A](), ok: ok}
}

// decide runs the gates in order: output shape, width selection, native
// capability, operand load and lane conversion.
func decide(t *Target, op OpID, e Kind, n int, hasLanes bool, probes ...operandProbe) Decision {
	d := Decision{Op: op, Kind: e, Lanes: n}
	switch {
	case !hasLanes:
		d.Reason = ReasonScalarOperands
		return d
	case n == 0:
		d.Reason = ReasonNoLanes
		return d
	}
	w, ok := t.widthFor(n * e.Size())
	if !ok {
		d.Reason = ReasonNoWidth
		return d
	}
	d.Width = w
	if !t.Native(op, w, e) {
		d.Reason = ReasonNoInstruction
		return d
	}
	for _, p := range probes {
		d.Operand = p.kind
		if !p.ok {
			d.Reason = ReasonNoLoad
			return d
		}
		if !t.CanConvert(p.kind, e) {
			d.Reason = ReasonNoConversion
			return d
		}
	}
	d.Operand = KindInvalid
	d.Native = true
	return d
}

// ExplainBinary reports which path AttemptBinary would take for an
// operation computing in E, without running it.
func ExplainBinary[E, A, B Lanes](t *Target, op OpID, lhs Operand[A], rhs Operand[B]) Decision {
	t = resolve(t)
	n, ok := overlap(countOf(lhs), countOf(rhs))
	return decide(t, op, KindOf[E](), n, ok, probe(t, lhs, n), probe(t, rhs, n))
}

// ExplainUnary reports which path AttemptUnary would take.
func ExplainUnary[E, A Lanes](t *Target, op OpID, v Operand[A]) Decision {
	t = resolve(t)
	n, ok := overlap(countOf(v))
	return decide(t, op, KindOf[E](), n, ok, probe(t, v, n))
}

// AttemptBinary computes op over lhs and rhs in lanes of kind E. It takes
// the native path when every gate passes: both operands load into
// registers, padding unused lanes with def, and convert to E. Otherwise it
// runs the fallback evaluator on the original operands. Either way the
// only errors are the ones op itself raises.
//
// The native path returns a register when every non-scalar operand is a
// register and an Array of the overlap length otherwise. The fallback
// returns an Array, or a Scalar when both operands are scalars.
func AttemptBinary[E, A, B Lanes](t *Target, op BinaryOp[E], lhs Operand[A], rhs Operand[B], def E) (Operand[E], error) {
	t = resolve(t)
	d := ExplainBinary[E](t, op.ID, lhs, rhs)
	if !d.Native || op.Native == nil {
		return FallbackBinary(op.Scalar, spill(lhs), spill(rhs))
	}
	a := loadConverted(t, lhs, d, def)
	b := loadConverted(t, rhs, d, def)
	out := vreg[E]{w: d.Width}
	if err := op.Native(d.Width, out.lanes(), a.lanes(), b.lanes()); err != nil {
		return nil, err
	}
	return shapeResult(&out, d.Lanes, registerResult(lhs.Form(), rhs.Form())), nil
}

// AttemptUnary is AttemptBinary for one operand. A scalar operand always
// takes the fallback path.
func AttemptUnary[E, A Lanes](t *Target, op UnaryOp[E], v Operand[A], def E) (Operand[E], error) {
	t = resolve(t)
	d := ExplainUnary[E](t, op.ID, v)
	if !d.Native || op.Native == nil {
		return FallbackUnary(op.Scalar, spill(v))
	}
	a := loadConverted(t, v, d, def)
	out := vreg[E]{w: d.Width}
	if err := op.Native(d.Width, out.lanes(), a.lanes()); err != nil {
		return nil, err
	}
	return shapeResult(&out, d.Lanes, registerResult(v.Form())), nil
}

// loadConverted loads op and converts it to a register of E lanes at the
// decided width. Lanes past the overlap take def.
func loadConverted[E, A Lanes](t *Target, op Operand[A], d Decision, def E) vreg[E] {
	src, ok := loadOperand(t, op, d.Lanes, ConvertLane[A](def))
	p, err := PlanConversion(t, KindOf[A](), KindOf[E]())
	if !ok || err != nil {
		panic(fmt.Sprintf("hwy: %s passed the gates but %s operand does not load", d, KindOf[A]()))
	}
	v := convertVreg[E](p, &src, d.Width)
	padFrom(&v, d.Lanes, def)
	return v
}

func registerResult(forms ...Form) bool {
	for _, f := range forms {
		if f == FormArray {
			return false
		}
	}
	return true
}

func shapeResult[E Lanes](v *vreg[E], n int, asRegister bool) Operand[E] {
	if asRegister {
		return v.toRegister()
	}
	out := make(Array[E], n)
	copy(out, v.lanes())
	return out
}

// AttemptCompare compares lhs and rhs lane by lane in their lossless pair
// kind. The lanes are never converted to a boolean kind: the native path
// compares in registers and returns a RegMask, the fallback returns a
// BoolArray. Both cover the overlap lanes.
func AttemptCompare[A, B Lanes](t *Target, p ComparePred, lhs Operand[A], rhs Operand[B]) Mask {
	return comparerFor[A, B]().attempt(t, p, lhs, rhs)
}

// ExplainCompare reports which path AttemptCompare would take.
func ExplainCompare[A, B Lanes](t *Target, p ComparePred, lhs Operand[A], rhs Operand[B]) Decision {
	return comparerFor[A, B]().explain(t, p.Op(), lhs, rhs)
}

type comparer[A, B Lanes] struct {
	attempt  func(*Target, ComparePred, Operand[A], Operand[B]) Mask
	fallback func(ComparePred, Operand[A], Operand[B]) (Mask, error)
	explain  func(*Target, OpID, Operand[A], Operand[B]) Decision
}

func comparerIn[E, A, B Lanes]() comparer[A, B] {
	return comparer[A, B]{
		attempt:  attemptCompare[E, A, B],
		fallback: fallbackCompare[E, A, B],
		explain:  ExplainBinary[E, A, B],
	}
}

// comparerMixed compares uint64 lanes with signed integer lanes. No lane
// kind holds both, so the lanes are ordered without conversion, and only
// on the fallback path: the int64 register route rejects uint64.
func comparerMixed[A, B Lanes]() comparer[A, B] {
	c := comparerIn[int64, A, B]()
	c.fallback = fallbackCompareMixed[A, B]
	c.attempt = func(_ *Target, p ComparePred, lhs Operand[A], rhs Operand[B]) Mask {
		m, _ := fallbackCompareMixed(p, spill(lhs), spill(rhs))
		return m
	}
	return c
}

func mixedSign(a, b Kind) bool {
	return a == KindUint64 && b.IsInteger() && b.Signed()
}

// comparerFor instantiates the compare path at the lossless kind of A and B.
func comparerFor[A, B Lanes]() comparer[A, B] {
	if ka, kb := KindOf[A](), KindOf[B](); mixedSign(ka, kb) || mixedSign(kb, ka) {
		return comparerMixed[A, B]()
	}
	switch Lossless[A, B]() {
	case KindInt8:
		return comparerIn[int8, A, B]()
	case KindInt16:
		return comparerIn[int16, A, B]()
	case KindInt32:
		return comparerIn[int32, A, B]()
	case KindInt64:
		return comparerIn[int64, A, B]()
	case KindUint8:
		return comparerIn[uint8, A, B]()
	case KindUint16:
		return comparerIn[uint16, A, B]()
	case KindUint32:
		return comparerIn[uint32, A, B]()
	case KindUint64:
		return comparerIn[uint64, A, B]()
	case KindFloat32:
		return comparerIn[float32, A, B]()
	}
	return comparerIn[float64, A, B]()
}

func attemptCompare[E, A, B Lanes](t *Target, p ComparePred, lhs Operand[A], rhs Operand[B]) Mask {
	t = resolve(t)
	d := ExplainBinary[E](t, p.Op(), lhs, rhs)
	if !d.Native {
		// Compare callables raise no errors and the operands are spilled.
		m, _ := fallbackCompare[E](p, spill(lhs), spill(rhs))
		return m
	}
	var zero E
	a := loadConverted(t, lhs, d, zero)
	b := loadConverted(t, rhs, d, zero)
	return newRegMask(VCmpMask(d.Width, p, a.lanes(), b.lanes()), d.Lanes, d.Width)
}
