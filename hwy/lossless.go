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

//go:generate go run ../cmd/hwytable -lossless zz_lossless_table.go

// LosslessRule returns the smallest kind that represents every value of a
// and of b without loss:
//
//   - equal kinds give that kind;
//   - float64 with anything gives float64, two floats give float64;
//   - float32 with an 8 or 16-bit integer gives float32, with a 32 or
//     64-bit integer float64;
//   - integers of the same signedness give the wider one;
//   - a signed and an unsigned integer give the signed one if it is
//     strictly wider, else the signed kind twice the unsigned width.
//
// No integer kind holds both int64 and uint64; that pair, and any signed
// kind with uint64, gives int64.
//
// LosslessRule is the definition; LosslessKind answers from the
// precomputed table.
func LosslessRule(a, b Kind) Kind {
	if !a.Valid() || !b.Valid() {
		return KindInvalid
	}
	if a == b {
		return a
	}
	if a.IsFloat() || b.IsFloat() {
		if a == KindFloat64 || b == KindFloat64 {
			return KindFloat64
		}
		other := a
		if a == KindFloat32 {
			other = b
		}
		if other.Size() <= 2 {
			return KindFloat32
		}
		return KindFloat64
	}
	if a.Signed() == b.Signed() {
		if a.Size() >= b.Size() {
			return a
		}
		return b
	}
	s, u := a, b
	if !s.Signed() {
		s, u = b, a
	}
	if u == KindUint64 {
		return KindInt64
	}
	if s.Size() > u.Size() {
		return s
	}
	return IntKind(u.Size()*2, true)
}

// LosslessKind returns the lossless pair kind of a and b.
func LosslessKind(a, b Kind) Kind {
	if a >= numKinds || b >= numKinds {
		return KindInvalid
	}
	return losslessTable[a][b]
}

// Lossless returns the lossless pair kind of the lane types A and B.
func Lossless[A, B Lanes]() Kind {
	return LosslessKind(KindOf[A](), KindOf[B]())
}
