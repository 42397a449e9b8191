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
	"fmt"
	"strings"
)

type stepKind uint8

const (
	// stepDirect is one instruction with ConvertLane semantics.
	stepDirect stepKind = iota
	// stepBiasToFloat is a 64-bit integer to float64 through the bias trick.
	stepBiasToFloat
	// stepBiasFromFloat is float64 to a 64-bit integer through the bias trick.
	stepBiasFromFloat
)

type convStep struct {
	to   Kind
	kind stepKind
}

// ConversionPlan is the route a register conversion takes through the
// matrix: zero or more steps, each one lane-wise instruction sequence.
type ConversionPlan struct {
	From, To Kind
	steps    []convStep
}

// Route returns the kinds the lanes pass through, From first and To last.
func (p ConversionPlan) Route() []Kind {
	r := make([]Kind, 0, len(p.steps)+1)
	r = append(r, p.From)
	for _, s := range p.steps {
		r = append(r, s.to)
	}
	return r
}

// Bounded reports whether the plan uses the bias trick, which is exact
// only for magnitudes below 2^51.
func (p ConversionPlan) Bounded() bool {
	for _, s := range p.steps {
		if s.kind != stepDirect {
			return true
		}
	}
	return false
}

func (p ConversionPlan) String() string {
	var sb strings.Builder
	sb.WriteString(p.From.String())
	for _, s := range p.steps {
		sb.WriteString(" -> ")
		sb.WriteString(s.to.String())
		if s.kind != stepDirect {
			sb.WriteString(" (bias)")
		}
	}
	return sb.String()
}

// apply runs the plan on one carrier.
func (p ConversionPlan) apply(c uint64) uint64 {
	cur := p.From
	for _, s := range p.steps {
		switch s.kind {
		case stepBiasToFloat:
			c = biasToFloat(c)
		case stepBiasFromFloat:
			c = biasFromFloat(c)
		default:
			c = convertCarrier(cur, s.to, c)
		}
		cur = s.to
	}
	return c
}

type convEntry struct {
	plan ConversionPlan
	err  *ConversionError
}

func buildConvTable(t *Target) {
	for _, from := range AllKinds {
		for _, to := range AllKinds {
			steps, err := route(t.features, from, to)
			t.conv[from][to] = convEntry{
				plan: ConversionPlan{From: from, To: to, steps: steps},
				err:  err,
			}
		}
	}
}

// PlanConversion returns the route from lanes of kind from to lanes of kind
// to on target t. Pairs the matrix does not define return a
// *ConversionError naming both kinds.
func PlanConversion(t *Target, from, to Kind) (ConversionPlan, error) {
	if !from.Valid() || !to.Valid() {
		return ConversionPlan{}, &ConversionError{From: from, To: to, Static: true, Reason: "invalid kind"}
	}
	e := resolve(t).conv[from][to]
	if e.err != nil {
		return ConversionPlan{}, e.err
	}
	return e.plan, nil
}

// CanConvert reports whether registers of kind from convert to kind to.
func (t *Target) CanConvert(from, to Kind) bool {
	_, err := PlanConversion(t, from, to)
	return err == nil
}

func staticReject(from, to Kind, reason string) *ConversionError {
	return &ConversionError{From: from, To: to, Static: true, Reason: reason}
}

func targetReject(from, to Kind, reason string) *ConversionError {
	return &ConversionError{From: from, To: to, Reason: reason}
}

func direct(k Kind) convStep { return convStep{to: k} }

// route plans from -> to for the feature set f.
func route(f Features, from, to Kind) ([]convStep, *ConversionError) {
	if from == to {
		return nil, nil
	}
	wide := f.Has(FeatureAVX512F) || f.Has(FeatureNEON)
	dq := f.Has(FeatureAVX512DQ) || f.Has(FeatureNEON)

	switch {
	case from.IsInteger() && to.IsInteger():
		return intRoute(f, from, to)

	case from.IsInteger():
		switch from.Size() {
		case 1, 2:
			// No narrow integer to float instruction: widen to int32 first.
			rest, err := route(f, KindInt32, to)
			if err != nil {
				return nil, err
			}
			return append([]convStep{direct(KindInt32)}, rest...), nil
		case 4:
			if from == KindUint32 && to == KindFloat32 && !wide {
				return []convStep{direct(KindFloat64), direct(KindFloat32)}, nil
			}
			return []convStep{direct(to)}, nil
		}
		switch {
		case dq:
			return []convStep{direct(to)}, nil
		case to == KindFloat32:
			return nil, targetReject(from, to, "64-bit integer to float32 needs AVX-512DQ or NEON")
		}
		return []convStep{{to: KindFloat64, kind: stepBiasToFloat}}, nil

	case to.IsInteger():
		switch to.Size() {
		case 1, 2:
			rest, err := intRoute(f, KindInt32, to)
			if err != nil {
				return nil, err
			}
			return append([]convStep{direct(KindInt32)}, rest...), nil
		case 4:
			return []convStep{direct(to)}, nil
		}
		if dq {
			return []convStep{direct(to)}, nil
		}
		var steps []convStep
		if from == KindFloat32 {
			steps = append(steps, direct(KindFloat64))
		}
		return append(steps, convStep{to: to, kind: stepBiasFromFloat}), nil
	}
	return []convStep{direct(to)}, nil
}

func intRoute(f Features, from, to Kind) ([]convStep, *ConversionError) {
	switch {
	case from == to:
		return nil, nil
	case from.Size() == to.Size():
		if from.Size() == 8 {
			return nil, staticReject(from, to, "int64 and uint64 share no range")
		}
		return []convStep{direct(to)}, nil
	case to.Size() > from.Size():
		return []convStep{direct(to)}, nil
	}

	// Narrowing saturates.
	switch from.Size() {
	case 8:
		if to.Size() < 4 {
			return nil, staticReject(from, to, "64-bit lanes narrow only to 32 bits")
		}
		if !f.Has(FeatureAVX512F) && !f.Has(FeatureNEON) {
			return nil, targetReject(from, to, "64-bit narrowing needs AVX-512F or NEON")
		}
		return []convStep{direct(to)}, nil
	case 4:
		if to.Size() == 1 {
			return []convStep{direct(IntKind(2, to.Signed())), direct(to)}, nil
		}
		return []convStep{direct(to)}, nil
	}
	if from.Signed() != to.Signed() {
		return nil, staticReject(from, to, "16 to 8-bit narrowing across signedness is ambiguous")
	}
	return []convStep{direct(to)}, nil
}

// convertVreg converts src into a register of width w, one 128-bit
// destination block at a time. Destination lanes past the source lanes
// are zero.
func convertVreg[To, From Lanes](p ConversionPlan, src *vreg[From], w Width) vreg[To] {
	dst := vreg[To]{w: w}
	s := src.lanes()
	n := LanesOf[To](Width128)
	for b := 0; b < w.Blocks(); b++ {
		convertBlock(p, dst.block(b), s, b*n)
	}
	return dst
}

func convertBlock[To, From Lanes](p ConversionPlan, dst []To, src []From, off int) {
	for i := range dst {
		j := off + i
		if j >= len(src) {
			var zero To
			dst[i] = zero
			continue
		}
		dst[i] = fromCarrier[To](p.apply(toCarrier(src[j])))
	}
}

// Convert converts register r to the register type RT, whose width may
// differ from r's. Destination lanes past r's lane count are zero; source
// lanes past RT's lane count are dropped.
//
// Example:
//
//	v := hwy.Load[uint8, hwy.Vec128[uint8]]([]uint8{1, 2, 250}, 0)
//	f, err := hwy.Convert[float32, uint8, hwy.Vec512[float32]](nil, v)
func Convert[To, From Lanes, RT Register[To], RF Register[From]](t *Target, r RF) (RT, error) {
	var out RT
	p, err := PlanConversion(t, KindOf[From](), KindOf[To]())
	if err != nil {
		return out, err
	}
	src, _ := vregOf[From](r)
	dst := convertVreg[To](p, &src, out.Width())
	return asRegister[To, RT](&dst), nil
}

// PromoteTo widens every lane of r to a wider kind. RT must hold as many
// lanes as RF, e.g. Vec128[int16] to Vec256[int32].
func PromoteTo[To, From Lanes, RT Register[To], RF Register[From]](t *Target, r RF) (RT, error) {
	var out RT
	if err := checkResize[To, From](r.NumLanes(), out.NumLanes(), true); err != nil {
		return out, err
	}
	return Convert[To, From, RT](t, r)
}

// DemoteTo narrows every lane of r with saturation. RT must hold as many
// lanes as RF, e.g. Vec256[int32] to Vec128[int16].
func DemoteTo[To, From Lanes, RT Register[To], RF Register[From]](t *Target, r RF) (RT, error) {
	var out RT
	if err := checkResize[To, From](r.NumLanes(), out.NumLanes(), false); err != nil {
		return out, err
	}
	return Convert[To, From, RT](t, r)
}

func checkResize[To, From Lanes](srcLanes, dstLanes int, widen bool) error {
	from, to := KindOf[From](), KindOf[To]()
	name, ok := "DemoteTo", to.Size() < from.Size()
	if widen {
		name, ok = "PromoteTo", to.Size() > from.Size()
	}
	if !ok {
		return fmt.Errorf("hwy: %s from %s to %s does not change the lane size: %w", name, from, to, ErrUnsupported)
	}
	if srcLanes != dstLanes {
		return fmt.Errorf("hwy: %s from %d to %d lanes: %w", name, srcLanes, dstLanes, ErrUnsupported)
	}
	return nil
}
