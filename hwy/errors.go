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
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Divide when any divisor lane is zero.
	// It is raised the same way on the native and the fallback paths.
	ErrDivisionByZero = errors.New("hwy: division by zero")

	// ErrUnsupported marks a request the evaluator cannot serve, such as a
	// register reaching the fallback loop. Operations never return it to
	// callers; seeing it means the dispatch core routed a call wrongly.
	ErrUnsupported = errors.New("hwy: unsupported")
)

// ConversionError reports a register conversion the matrix does not
// define. Static errors hold for every target; the others name the
// features the target lacks.
type ConversionError struct {
	From, To Kind
	Static   bool
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("hwy: no register conversion from %s to %s: %s", e.From, e.To, e.Reason)
}

// Is lets errors.Is(err, ErrUnsupported) match conversion failures.
func (e *ConversionError) Is(target error) bool {
	return target == ErrUnsupported
}
