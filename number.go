// Copyright 2025 The Rivaas Authors
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

package directions

import (
	"strconv"
	"strings"
)

// FormatFloat renders a decimal number in its canonical wire form:
// plain decimal notation with "." as the separator, no grouping
// separators, at most six fractional digits, trailing fractional
// zeros and a dangling point removed. Integral values render with no
// fractional part, so FormatFloat(5.0) == "5".
//
// Values with more than six fractional digits are rounded to nearest
// with ties to even. The function is locale independent and never
// emits scientific notation.
//
// Non-finite values render as "NaN", "+Inf" and "-Inf"; they never
// reach the wire through the validating formatters, which reject
// them wherever a range rule applies.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	if !strings.Contains(s, ".") {
		// NaN and the infinities carry no fractional part to strip.
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
