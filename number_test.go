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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"integral value drops fractional part", 5.0, "5"},
		{"zero", 0.0, "0"},
		{"negative integral", -42.0, "-42"},
		{"short fraction kept", 5.1, "5.1"},
		{"trailing zeros stripped", 2.50, "2.5"},
		{"six digits kept", 1.234567, "1.234567"},
		{"seventh digit rounded away", 5.123456789, "5.123457"},
		{"rounding carries", 0.9999999, "1"},
		{"negative fraction", -0.25, "-0.25"},
		{"coordinate precision", -122.419418, "-122.419418"},
		{"large value stays plain decimal", 123456789.5, "123456789.5"},
		{"below the precision floor", 0.0000001, "0"},
		{"smallest representable digit", 0.000001, "0.000001"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatFloat(tt.input))
		})
	}
}

func TestFormatFloat_NeverScientific(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{1e21, 1e-10, 9.87e15, 5e-7} {
		got := FormatFloat(f)
		assert.NotContains(t, got, "e")
		assert.NotContains(t, got, "E")
	}
}

func TestFormatFloat_NoGroupingSeparator(t *testing.T) {
	t.Parallel()

	got := FormatFloat(1234567.89)
	assert.Equal(t, "1234567.89", got)
	assert.False(t, strings.ContainsAny(got, ", "), "grouping separators must never appear")
}

func TestFormatFloat_NonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatFloat(math.Inf(-1)))
}
