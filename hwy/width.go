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

import "unsafe"

// Width is a register width class: the physical size of a vector register.
type Width uint8

const (
	// Width128 is a 128-bit register (SSE, NEON).
	Width128 Width = iota
	// Width256 is a 256-bit register (AVX2).
	Width256
	// Width512 is a 512-bit register (AVX-512).
	Width512

	numWidths
)

// AllWidths lists the width classes from narrowest to widest.
var AllWidths = [...]Width{Width128, Width256, Width512}

// Bytes returns the width in bytes (16, 32 or 64).
func (w Width) Bytes() int {
	return 16 << w
}

// Bits returns the width in bits (128, 256 or 512).
func (w Width) Bits() int {
	return w.Bytes() * 8
}

// String returns "128bit", "256bit" or "512bit".
func (w Width) String() string {
	switch w {
	case Width128:
		return "128bit"
	case Width256:
		return "256bit"
	case Width512:
		return "512bit"
	}
	return "invalid"
}

// Blocks returns the number of 128-bit blocks in the width.
func (w Width) Blocks() int {
	return 1 << w
}

// LanesOf returns the number of T values that fit in a register of width w.
//
// For example, with Width256:
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int8: 32/1 = 32 lanes
func LanesOf[T Lanes](w Width) int {
	var dummy T
	return w.Bytes() / int(unsafe.Sizeof(dummy))
}
