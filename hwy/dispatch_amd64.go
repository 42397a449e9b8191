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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	var f Features
	set := func(has bool, g Features) {
		if has {
			f |= g
		}
	}
	set(cpu.X86.HasSSE2, FeatureSSE2)
	set(cpu.X86.HasSSSE3, FeatureSSSE3)
	set(cpu.X86.HasSSE41, FeatureSSE41)
	set(cpu.X86.HasSSE42, FeatureSSE42)
	set(cpu.X86.HasAVX2, FeatureAVX2)
	set(cpu.X86.HasAVX512F, FeatureAVX512F)
	set(cpu.X86.HasAVX512BW, FeatureAVX512BW)
	set(cpu.X86.HasAVX512DQ, FeatureAVX512DQ)
	set(cpu.X86.HasAVX512VL, FeatureAVX512VL)
	return f
}
