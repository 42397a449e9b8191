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

// The fallback evaluator computes an operation one lane at a time, in
// forward lane order, without touching registers. Lanes are cast to the
// computation kind with ConvertLane, a scalar operand is broadcast, and
// two arrays of different lengths are truncated to the shorter one.

// FallbackBinary applies f to each lane pair of lhs and rhs. The result is
// a Scalar when both operands are scalars and an Array of the overlap
// length otherwise. The first error f returns is returned as is. Register
// operands yield ErrUnsupported: the dispatch core spills registers before
// falling back.
func FallbackBinary[E, A, B Lanes](f func(a, b E) (E, error), lhs Operand[A], rhs Operand[B]) (Operand[E], error) {
	if lhs.Form() == FormRegister || rhs.Form() == FormRegister {
		return nil, ErrUnsupported
	}
	n, ok := overlap(countOf(lhs), countOf(rhs))
	if !ok {
		v, err := f(ConvertLane[E](lhs.Lane(0)), ConvertLane[E](rhs.Lane(0)))
		if err != nil {
			return nil, err
		}
		return ScalarOf(v), nil
	}
	out := make(Array[E], n)
	for i := range out {
		v, err := f(ConvertLane[E](lhs.Lane(i)), ConvertLane[E](rhs.Lane(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FallbackUnary applies f to each lane of v.
func FallbackUnary[E, A Lanes](f func(a E) (E, error), v Operand[A]) (Operand[E], error) {
	if v.Form() == FormRegister {
		return nil, ErrUnsupported
	}
	if v.Form() == FormScalar {
		r, err := f(ConvertLane[E](v.Lane(0)))
		if err != nil {
			return nil, err
		}
		return ScalarOf(r), nil
	}
	out := make(Array[E], v.NumLanes())
	for i := range out {
		r, err := f(ConvertLane[E](v.Lane(i)))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// FallbackCompare compares lhs and rhs lane by lane in their lossless pair
// kind and returns a BoolArray.
func FallbackCompare[A, B Lanes](p ComparePred, lhs Operand[A], rhs Operand[B]) (Mask, error) {
	return comparerFor[A, B]().fallback(p, lhs, rhs)
}

func fallbackCompare[E, A, B Lanes](p ComparePred, lhs Operand[A], rhs Operand[B]) (Mask, error) {
	if lhs.Form() == FormRegister || rhs.Form() == FormRegister {
		return nil, ErrUnsupported
	}
	n, ok := overlap(countOf(lhs), countOf(rhs))
	if !ok {
		n = 1
	}
	out := make(BoolArray, n)
	for i := range out {
		out[i] = compareLane(p, ConvertLane[E](lhs.Lane(i)), ConvertLane[E](rhs.Lane(i)))
	}
	return out, nil
}

func fallbackCompareMixed[A, B Lanes](p ComparePred, lhs Operand[A], rhs Operand[B]) (Mask, error) {
	if lhs.Form() == FormRegister || rhs.Form() == FormRegister {
		return nil, ErrUnsupported
	}
	n, ok := overlap(countOf(lhs), countOf(rhs))
	if !ok {
		n = 1
	}
	out := make(BoolArray, n)
	for i := range out {
		out[i] = compareLane(p, orderMixed(lhs.Lane(i), rhs.Lane(i)), 0)
	}
	return out, nil
}

// orderMixed returns -1, 0 or 1 as a is below, equal to or above b, where
// one of them is a uint64 lane and the other a signed integer lane.
func orderMixed[A, B Lanes](a A, b B) int8 {
	if KindOf[A]() == KindUint64 {
		return orderUnsigned(ConvertLane[uint64](a), ConvertLane[int64](b))
	}
	return -orderUnsigned(ConvertLane[uint64](b), ConvertLane[int64](a))
}

func orderUnsigned(u uint64, s int64) int8 {
	switch {
	case s < 0 || u > uint64(s):
		return 1
	case u < uint64(s):
		return -1
	}
	return 0
}
