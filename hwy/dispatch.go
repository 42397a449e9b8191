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
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel names the instruction set family a target compiles to.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchSSE4 indicates SSSE3, SSE4.1 and SSE4.2 (128-bit).
	DispatchSSE4

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// AllLevels lists every dispatch level.
var AllLevels = [...]DispatchLevel{
	DispatchScalar, DispatchSSE2, DispatchSSE4, DispatchAVX2, DispatchAVX512, DispatchNEON,
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE4:
		return "sse4"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseLevel returns the level whose String is name.
func ParseLevel(name string) (DispatchLevel, error) {
	for _, l := range AllLevels {
		if l.String() == strings.ToLower(name) {
			return l, nil
		}
	}
	return DispatchScalar, fmt.Errorf("hwy: unknown dispatch level %q", name)
}

// Features is a set of instruction set extensions.
type Features uint32

const (
	FeatureSSE2 Features = 1 << iota
	FeatureSSSE3
	FeatureSSE41
	FeatureSSE42
	FeatureAVX2
	FeatureAVX512F
	FeatureAVX512BW
	FeatureAVX512DQ
	FeatureAVX512VL
	FeatureNEON
)

var featureNames = []struct {
	f    Features
	name string
}{
	{FeatureSSE2, "sse2"},
	{FeatureSSSE3, "ssse3"},
	{FeatureSSE41, "sse4.1"},
	{FeatureSSE42, "sse4.2"},
	{FeatureAVX2, "avx2"},
	{FeatureAVX512F, "avx512f"},
	{FeatureAVX512BW, "avx512bw"},
	{FeatureAVX512DQ, "avx512dq"},
	{FeatureAVX512VL, "avx512vl"},
	{FeatureNEON, "neon"},
}

// Has reports whether every feature in g is present in f.
func (f Features) Has(g Features) bool {
	return f&g == g
}

func (f Features) String() string {
	var names []string
	for _, fn := range featureNames {
		if f.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

const (
	featuresSSE4   = FeatureSSE2 | FeatureSSSE3 | FeatureSSE41 | FeatureSSE42
	featuresAVX2   = featuresSSE4 | FeatureAVX2
	featuresAVX512 = featuresAVX2 | FeatureAVX512F | FeatureAVX512BW | FeatureAVX512DQ | FeatureAVX512VL
)

// LevelFeatures returns the canonical feature set of a level.
func LevelFeatures(l DispatchLevel) Features {
	switch l {
	case DispatchSSE2:
		return FeatureSSE2
	case DispatchSSE4:
		return featuresSSE4
	case DispatchAVX2:
		return featuresAVX2
	case DispatchAVX512:
		return featuresAVX512
	case DispatchNEON:
		return FeatureNEON
	}
	return 0
}

// Target is the capability configuration of one machine: the feature set,
// the register widths it has and, for every operation, width and lane
// kind, whether a native instruction sequence exists. A Target is built
// once and never changes; it is safe for concurrent use.
//
// A nil *Target stands for CurrentTarget() wherever a target is accepted.
type Target struct {
	level    DispatchLevel
	features Features
	widths   [numWidths]bool
	native   [numOps][numWidths][numKinds]bool
	conv     [numKinds][numKinds]convEntry
}

// NewTarget builds the target for a feature set.
func NewTarget(f Features) *Target {
	t := &Target{features: f, level: levelOf(f)}
	simd := f.Has(FeatureSSE2) || f.Has(FeatureNEON)
	t.widths[Width128] = simd
	t.widths[Width256] = f.Has(FeatureAVX2)
	t.widths[Width512] = f.Has(FeatureAVX512F)
	buildCapTable(t)
	buildConvTable(t)
	return t
}

func levelOf(f Features) DispatchLevel {
	switch {
	case f.Has(FeatureAVX512F):
		return DispatchAVX512
	case f.Has(FeatureAVX2):
		return DispatchAVX2
	case f.Has(FeatureSSE41):
		return DispatchSSE4
	case f.Has(FeatureSSE2):
		return DispatchSSE2
	case f.Has(FeatureNEON):
		return DispatchNEON
	}
	return DispatchScalar
}

// TargetFor returns the canonical target of a level. It does not look at
// the running machine; the native paths are portable, so any level can be
// exercised anywhere.
func TargetFor(l DispatchLevel) *Target {
	return levelTargets[l]
}

var levelTargets = func() map[DispatchLevel]*Target {
	m := make(map[DispatchLevel]*Target, len(AllLevels))
	for _, l := range AllLevels {
		m[l] = NewTarget(LevelFeatures(l))
	}
	return m
}()

// currentTarget is the target detected for this runtime.
// Set by init() below from the per-architecture detectFeatures.
var currentTarget *Target

func init() {
	if NoSimdEnv() {
		currentTarget = NewTarget(0)
		return
	}
	currentTarget = NewTarget(detectFeatures())
}

// CurrentTarget returns the target detected at startup.
func CurrentTarget() *Target {
	return currentTarget
}

func resolve(t *Target) *Target {
	if t == nil {
		return currentTarget
	}
	return t
}

// Level returns the dispatch level of the target.
func (t *Target) Level() DispatchLevel { return resolve(t).level }

// Features returns the feature set the target was built from.
func (t *Target) Features() Features { return resolve(t).features }

// HasWidth reports whether the target has registers of width w.
func (t *Target) HasWidth(w Width) bool {
	return w < numWidths && resolve(t).widths[w]
}

// Widths returns the available register widths, narrowest first.
func (t *Target) Widths() []Width {
	var ws []Width
	for _, w := range AllWidths {
		if t.HasWidth(w) {
			ws = append(ws, w)
		}
	}
	return ws
}

// MaxWidth returns the widest available register width. The second
// result is false on a scalar target.
func (t *Target) MaxWidth() (Width, bool) {
	ws := t.Widths()
	if len(ws) == 0 {
		return 0, false
	}
	return ws[len(ws)-1], true
}

// Native reports whether op has a native instruction sequence for lanes of
// kind k in registers of width w.
func (t *Target) Native(op OpID, w Width, k Kind) bool {
	if op >= numOps || w >= numWidths || k >= numKinds {
		return false
	}
	return resolve(t).native[op][w][k]
}

// widthFor returns the narrowest available width holding n bytes.
func (t *Target) widthFor(n int) (Width, bool) {
	for _, w := range AllWidths {
		if n <= w.Bytes() && t.HasWidth(w) {
			return w, true
		}
	}
	return 0, false
}

// String summarizes the target: level, widths and features.
func (t *Target) String() string {
	t = resolve(t)
	ws := make([]string, 0, numWidths)
	for _, w := range t.Widths() {
		ws = append(ws, w.String())
	}
	if len(ws) == 0 {
		ws = append(ws, "none")
	}
	return fmt.Sprintf("%s (widths: %s; features: %s)", t.level, strings.Join(ws, ","), t.features)
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, CurrentTarget is the scalar target regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentTarget.level
}

// CurrentWidth returns the widest SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, and 0 for
// the scalar target.
func CurrentWidth() int {
	w, ok := currentTarget.MaxWidth()
	if !ok {
		return 0
	}
	return w.Bytes()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentTarget.level.String()
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return CurrentWidth() / int(unsafe.Sizeof(dummy))
}
