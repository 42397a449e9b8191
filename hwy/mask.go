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
	"math/bits"
	"strings"
)

// Mask is the per-lane result of a comparison. Bit i of Bits is set iff
// lane i compared true; a native compare register and a fallback boolean
// array with the same lanes are interchangeable.
type Mask interface {
	NumLanes() int
	Get(i int) bool
	// Bits packs the first 64 lanes into a bitmask, lane 0 in bit 0.
	Bits() uint64
}

// BoolArray is the mask produced by the fallback evaluator.
type BoolArray []bool

// NumLanes returns len(m).
func (m BoolArray) NumLanes() int { return len(m) }

// Get returns m[i].
func (m BoolArray) Get(i int) bool { return m[i] }

// Bits packs the lanes into a bitmask.
func (m BoolArray) Bits() uint64 {
	var b uint64
	for i, v := range m {
		if i == 64 {
			break
		}
		if v {
			b |= 1 << uint(i)
		}
	}
	return b
}

func (m BoolArray) String() string { return maskString(m) }

// RegMask is the mask produced by a native compare: the sign bits of the
// compare register, trimmed to the lanes the operation covered.
type RegMask struct {
	bits uint64
	n    uint8
	w    Width
}

func newRegMask(bits uint64, n int, w Width) RegMask {
	if n < 64 {
		bits &= 1<<uint(n) - 1
	}
	return RegMask{bits: bits, n: uint8(n), w: w}
}

// NumLanes returns the number of lanes covered by the mask.
func (m RegMask) NumLanes() int { return int(m.n) }

// Get reports whether lane i compared true.
func (m RegMask) Get(i int) bool {
	if i < 0 || i >= int(m.n) {
		panic("hwy: mask lane out of range")
	}
	return m.bits>>uint(i)&1 != 0
}

// Bits returns the bitmask.
func (m RegMask) Bits() uint64 { return m.bits }

// Width returns the width of the register the compare ran on.
func (m RegMask) Width() Width { return m.w }

func (m RegMask) String() string { return maskString(m) }

// MaskEqual reports whether a and b cover the same lanes with the same
// values, whatever their representation.
func MaskEqual(a, b Mask) bool {
	if a.NumLanes() != b.NumLanes() {
		return false
	}
	for i := 0; i < a.NumLanes(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// CountTrue returns the number of true lanes.
func CountTrue(m Mask) int {
	if m.NumLanes() <= 64 {
		return bits.OnesCount64(m.Bits())
	}
	n := 0
	for i := 0; i < m.NumLanes(); i++ {
		if m.Get(i) {
			n++
		}
	}
	return n
}

// AllTrue reports whether every lane is true.
func AllTrue(m Mask) bool { return CountTrue(m) == m.NumLanes() }

// AnyTrue reports whether at least one lane is true.
func AnyTrue(m Mask) bool { return CountTrue(m) > 0 }

func maskString(m Mask) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.NumLanes(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
