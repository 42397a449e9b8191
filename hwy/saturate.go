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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Lane-level saturating helpers shared by the backend primitives, the
// conversion matrix and the fallback callables.

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minLane[T constraints.Integer]() T {
	var zero T
	if zero-1 > zero {
		return zero
	}
	return T(1) << (8*sizeOf[T]() - 1)
}

func maxLane[T constraints.Integer]() T {
	return ^minLane[T]()
}

// SatAddLane returns a+b clamped to the range of T.
func SatAddLane[T constraints.Integer](a, b T) T {
	s := a + b
	var zero T
	if zero-1 > zero {
		if s < a {
			return maxLane[T]()
		}
		return s
	}
	switch {
	case b > 0 && s < a:
		return maxLane[T]()
	case b < 0 && s > a:
		return minLane[T]()
	}
	return s
}

// SatSubLane returns a-b clamped to the range of T.
func SatSubLane[T constraints.Integer](a, b T) T {
	d := a - b
	var zero T
	if zero-1 > zero {
		if b > a {
			return zero
		}
		return d
	}
	switch {
	case b < 0 && d < a:
		return maxLane[T]()
	case b > 0 && d > a:
		return minLane[T]()
	}
	return d
}

func sizeOf[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
