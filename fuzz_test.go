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
	"math"
	"strconv"
	"strings"
	"testing"
)

// FuzzParseRoundTrip checks that any string splits and rejoins to
// itself: ParseStrings never fails, and joining the result without
// trimming must reproduce the input byte for byte.
func FuzzParseRoundTrip(f *testing.F) {
	f.Add("1;4;5;7;8")
	f.Add("ab;;;cd;ef;;;gh;ij")
	f.Add(";distance;congestion;")
	f.Add(";;")
	f.Add("")
	f.Add("a")
	f.Add("1.2,3.4;;5.65,7.123")

	f.Fuzz(func(t *testing.T, input string) {
		parsed, err := ParseStrings(Some(input), DefaultDelimiter)
		if err != nil {
			t.Fatalf("ParseStrings(%q) = %v; identity parsing must never fail", input, err)
		}

		joined := FormatList(parsed, DefaultDelimiter, func(s string) string { return s }, false)
		got, ok := joined.Get()
		if !ok {
			t.Fatalf("join of parsed %q is absent", input)
		}
		if got != input {
			t.Fatalf("round trip of %q = %q", input, got)
		}
	})
}

// FuzzParseTyped checks panic-safety of the typed parsers over
// arbitrary input, in the spirit of fuzzing every converter.
func FuzzParseTyped(f *testing.F) {
	f.Add("1;4;5")
	f.Add(";true;;false")
	f.Add("1.2,3.4;;5.65,7.123")
	f.Add(";5.1,7.4;;")
	f.Add("9223372036854775807;-9223372036854775808")
	f.Add("1e308;-1e308;1e-308")
	f.Add("NaN;Inf;-Inf")
	f.Add(",,;,;;,")
	f.Add("\x00;\xff")

	f.Fuzz(func(t *testing.T, input string) {
		// Errors are expected for most inputs; panics never are.
		//nolint:errcheck // Fuzz test intentionally ignores errors; testing panic-safety only
		_, _ = ParseIntegers(Some(input), DefaultDelimiter)
		//nolint:errcheck // Fuzz test intentionally ignores errors; testing panic-safety only
		_, _ = ParseFloats(Some(input), DefaultDelimiter)
		//nolint:errcheck // Fuzz test intentionally ignores errors; testing panic-safety only
		_, _ = ParseBooleans(Some(input), DefaultDelimiter)
		//nolint:errcheck // Fuzz test intentionally ignores errors; testing panic-safety only
		_, _ = ParsePoints(Some(input), DefaultDelimiter)
		//nolint:errcheck // Fuzz test intentionally ignores errors; testing panic-safety only
		_, _ = ParseFloatLists(Some(input), DefaultDelimiter)
	})
}

// FuzzFormatFloat checks that canonical rendering stays in plain
// decimal notation and survives a reparse within rounding tolerance.
func FuzzFormatFloat(f *testing.F) {
	f.Add(0.0)
	f.Add(5.0)
	f.Add(5.123456789)
	f.Add(-122.419418)
	f.Add(0.0000001)
	f.Add(1e21)
	f.Add(-1e-21)
	f.Add(math.MaxFloat64)
	f.Add(math.SmallestNonzeroFloat64)

	f.Fuzz(func(t *testing.T, input float64) {
		got := FormatFloat(input)

		if math.IsNaN(input) || math.IsInf(input, 0) {
			return // rendered but never wire-legal; validators reject these
		}

		if strings.ContainsAny(got, "eE") {
			t.Fatalf("FormatFloat(%v) = %q uses scientific notation", input, got)
		}

		parsed, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("FormatFloat(%v) = %q does not reparse: %v", input, got, err)
		}
		if diff := math.Abs(parsed - input); diff > 1e-6 {
			t.Fatalf("FormatFloat(%v) = %q drifts by %v", input, got, diff)
		}
	})
}
