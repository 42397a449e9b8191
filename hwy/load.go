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

// Set returns a register of type R with every lane set to v.
func Set[T Lanes, R Register[T]](v T) R {
	var r R
	lanes := regLanes[T](&r)
	for i := range lanes {
		lanes[i] = v
	}
	return r
}

// Zero returns a register of type R with every lane zero.
func Zero[T Lanes, R Register[T]]() R {
	var r R
	return r
}

// Load builds a register of type R from src. When src fills the register
// the lanes are copied in one pass; otherwise lane i takes src[i] for
// every i < len(src) and the remaining lanes take def. The result always
// has the lane count of R.
//
// Example:
//
//	v := hwy.Load[int32, hwy.Vec128[int32]]([]int32{1, 2, 3}, 7) // [1 2 3 7]
func Load[T Lanes, R Register[T]](src []T, def T) R {
	var r R
	fill(regLanes[T](&r), src, def)
	return r
}

// fill writes src into dst, padding with def.
func fill[T Lanes](dst, src []T, def T) {
	if len(src) >= len(dst) {
		copy(dst, src[:len(dst)])
		return
	}
	for i := range dst {
		if i < len(src) {
			dst[i] = src[i]
		} else {
			dst[i] = def
		}
	}
}

// loadOperand loads op into a working register that holds at least n lanes.
// A register operand is used as is. A scalar is broadcast and an array is
// loaded with def padding, both at the narrowest width of t holding n
// lanes of T. The result is false when no such width exists; callers treat
// that as the signal to take the fallback path.
func loadOperand[T Lanes](t *Target, op Operand[T], n int, def T) (vreg[T], bool) {
	if r, ok := vregOf(op); ok {
		return r, len(r.lanes()) >= n
	}
	w, ok := loadWidth[T](t, op, n)
	if !ok {
		return vreg[T]{}, false
	}
	v := vreg[T]{w: w}
	switch o := op.(type) {
	case Scalar[T]:
		lanes := v.lanes()
		for i := range lanes {
			lanes[i] = o.Value
		}
	case Array[T]:
		fill(v.lanes(), o, def)
	default:
		// Other operand implementations go through Lane.
		src := make([]T, min(n, op.NumLanes()))
		for i := range src {
			src[i] = op.Lane(i)
		}
		fill(v.lanes(), src, def)
	}
	return v, true
}

// loadWidth is the width loadOperand uses for op, without loading it.
func loadWidth[T Lanes](t *Target, op Operand[T], n int) (Width, bool) {
	if r, ok := op.(registerValue); ok {
		return r.Width(), t.HasWidth(r.Width()) && op.NumLanes() >= n
	}
	return t.widthFor(n * KindOf[T]().Size())
}

// padFrom sets lanes n and above of v to def.
func padFrom[T Lanes](v *vreg[T], n int, def T) {
	lanes := v.lanes()
	for i := n; i < len(lanes); i++ {
		lanes[i] = def
	}
}
