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
	"fmt"
	"strconv"
	"strings"
)

// Conventional delimiters. The outer delimiter separates list
// positions; the inner one separates components of a compound element
// (a point's lng/lat, a bearing's angle/tolerance). Fields that use a
// comma as the outer delimiter must not contain compound elements.
const (
	DefaultDelimiter = ";"
	InnerDelimiter   = ","
)

// ElementParser converts one non-empty token into a value.
// It is never called for empty tokens; those become absent positions.
type ElementParser[T any] func(token string) (T, error)

// ParseList splits input on every occurrence of delimiter and converts
// each token with parse, preserving positions.
//
// An absent input yields a nil sequence ("parameter not supplied"); an
// empty input yields a non-nil zero-length sequence ("supplied but
// empty"). Otherwise the result has exactly one position per token:
// empty tokens (between consecutive delimiters, or at either end)
// become absent positions, and every other token goes through parse.
// The first parse failure aborts the whole call with an
// [*ElementError]; no partial sequence is returned.
func ParseList[T any](input Optional[string], delimiter string, parse ElementParser[T]) ([]Optional[T], error) {
	raw, ok := input.Get()
	if !ok {
		return nil, nil
	}
	if raw == "" {
		return []Optional[T]{}, nil
	}

	tokens := strings.Split(raw, delimiter)
	out := make([]Optional[T], 0, len(tokens))
	for i, token := range tokens {
		if token == "" {
			out = append(out, None[T]())
			continue
		}
		v, err := parse(token)
		if err != nil {
			return nil, &ElementError{Position: i, Token: token, Err: err}
		}
		out = append(out, Some(v))
	}

	return out, nil
}

// ParseIntegers parses a delimited list of base-10 integers.
// Tokens may carry a leading sign; grouping separators are rejected.
func ParseIntegers(input Optional[string], delimiter string) ([]Optional[int], error) {
	return ParseList(input, delimiter, parseIntToken)
}

// ParseFloats parses a delimited list of decimal numbers.
// Standard decimal and exponential forms are accepted.
func ParseFloats(input Optional[string], delimiter string) ([]Optional[float64], error) {
	return ParseList(input, delimiter, parseFloatToken)
}

// ParseStrings splits a delimited list without interpreting tokens.
// Callers wanting canonical constants apply a value map afterward,
// e.g. [ParseAnnotation] over each present token.
func ParseStrings(input Optional[string], delimiter string) ([]Optional[string], error) {
	return ParseList(input, delimiter, func(token string) (string, error) {
		return token, nil
	})
}

// ParsePoints parses a delimited list of 2-D points. Each token holds
// exactly two comma-separated decimal numbers in (longitude, latitude)
// order; any other component count fails.
func ParsePoints(input Optional[string], delimiter string) ([]Optional[Point], error) {
	return ParseList(input, delimiter, parsePointToken)
}

// ParseBooleans parses a delimited list of booleans. Tokens must be
// exactly "true" or "false", case-sensitively.
func ParseBooleans(input Optional[string], delimiter string) ([]Optional[bool], error) {
	return ParseList(input, delimiter, parseBoolToken)
}

// ParseFloatLists parses a delimited list whose present positions are
// themselves comma-separated lists of decimal numbers (per-leg
// distribution-style fields). An empty outer token is an absent
// position; the inner split is never attempted for it.
func ParseFloatLists(input Optional[string], delimiter string) ([]Optional[[]float64], error) {
	return ParseList(input, delimiter, parseFloatListToken)
}

func parseIntToken(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return v, nil
}

func parseFloatToken(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return v, nil
}

func parseBoolToken(token string) (bool, error) {
	// Deliberately stricter than strconv.ParseBool: the wire format
	// admits only the two lowercase literals.
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: got %q", ErrInvalidBoolean, token)
	}
}

func parsePointToken(token string) (Point, error) {
	parts := strings.Split(token, InnerDelimiter)
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: got %d", ErrPointArity, len(parts))
	}
	lng, err := parseFloatToken(parts[0])
	if err != nil {
		return Point{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := parseFloatToken(parts[1])
	if err != nil {
		return Point{}, fmt.Errorf("latitude: %w", err)
	}
	return Point{Lng: lng, Lat: lat}, nil
}

func parseFloatListToken(token string) ([]float64, error) {
	parts := strings.Split(token, InnerDelimiter)
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := parseFloatToken(part)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
