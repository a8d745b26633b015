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

// UnlimitedRadius is the sentinel radius token accepted alongside
// non-negative numbers.
const UnlimitedRadius = "unlimited"

// JoinTokens joins a positional token sequence into one delimited
// string. Absent positions render as empty substrings, so
// [Some("a"), None, Some("b")] joins to "a;;b".
//
// A nil sequence yields an absent result ("parameter not supplied");
// a non-nil empty sequence yields "". With trimTrailing set, every
// position after the last present one is dropped entirely rather than
// rendered as a trailing run of delimiters; if no position is present
// the output is "". Trimming is lossy by design: parsing the trimmed
// string yields a shorter, prefix-equal sequence.
func JoinTokens(tokens []Optional[string], delimiter string, trimTrailing bool) Optional[string] {
	if tokens == nil {
		return None[string]()
	}

	last := len(tokens) - 1
	if trimTrailing {
		for last >= 0 && !tokens[last].Present() {
			last--
		}
	}

	var sb strings.Builder
	for i := 0; i <= last; i++ {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		if tok, ok := tokens[i].Get(); ok {
			sb.WriteString(tok)
		}
	}

	return Some(sb.String())
}

// FormatList renders each present element with format and joins the
// results; see [JoinTokens] for the absence and trimming rules. It
// performs no validation — the field-specific formatters below do.
func FormatList[T any](elems []Optional[T], delimiter string, format func(T) string, trimTrailing bool) Optional[string] {
	if elems == nil {
		return None[string]()
	}

	tokens := make([]Optional[string], len(elems))
	for i, elem := range elems {
		if v, ok := elem.Get(); ok {
			tokens[i] = Some(format(v))
		} else {
			tokens[i] = None[string]()
		}
	}

	return JoinTokens(tokens, delimiter, trimTrailing)
}

// FormatBearings renders a bearings list. Each present position is an
// (angle, tolerance) pair: a slice of exactly two components, each of
// which may itself be absent. A nil inner slice, or a pair with
// either component absent, renders as an absent position. Any other
// component count fails with [ErrBearingArity]; a present pair with a
// component outside [0, 360] fails with [ErrBearingRange].
//
// Pairs render as FormatFloat(angle) + "," + FormatFloat(tolerance),
// joined by ";". A nil outer slice yields an absent result.
func FormatBearings(bearings [][]Optional[float64]) (Optional[string], error) {
	if bearings == nil {
		return None[string](), nil
	}

	tokens := make([]Optional[string], len(bearings))
	for i, bearing := range bearings {
		if bearing == nil {
			tokens[i] = None[string]()
			continue
		}
		if len(bearing) != 2 {
			return None[string](), &ValidationError{
				Position: i,
				Value:    fmt.Sprintf("%v", bearing),
				Err:      fmt.Errorf("%w: got %d", ErrBearingArity, len(bearing)),
			}
		}

		angle, angleOK := bearing[0].Get()
		tolerance, tolOK := bearing[1].Get()
		if !angleOK || !tolOK {
			tokens[i] = None[string]()
			continue
		}

		// Written so NaN fails the range check too.
		if !(angle >= 0 && angle <= 360) || !(tolerance >= 0 && tolerance <= 360) {
			return None[string](), &ValidationError{
				Position: i,
				Value:    FormatFloat(angle) + InnerDelimiter + FormatFloat(tolerance),
				Err:      ErrBearingRange,
			}
		}

		tokens[i] = Some(FormatFloat(angle) + InnerDelimiter + FormatFloat(tolerance))
	}

	return JoinTokens(tokens, DefaultDelimiter, false), nil
}

// FormatDistributions renders a per-leg distribution list. A nil or
// empty outer slice yields an absent result. An empty inner slice
// renders as an absent position; a single-component inner slice fails
// with [ErrDistributionArity]. Otherwise the first two components
// render canonically and any extras are ignored, reproducing the
// observed wire behavior.
func FormatDistributions(distributions [][]float64) (Optional[string], error) {
	if len(distributions) == 0 {
		return None[string](), nil
	}

	tokens := make([]Optional[string], len(distributions))
	for i, distribution := range distributions {
		if len(distribution) == 0 {
			tokens[i] = None[string]()
			continue
		}
		if len(distribution) == 1 {
			return None[string](), &ValidationError{
				Position: i,
				Value:    FormatFloat(distribution[0]),
				Err:      ErrDistributionArity,
			}
		}
		tokens[i] = Some(FormatFloat(distribution[0]) + InnerDelimiter + FormatFloat(distribution[1]))
	}

	return JoinTokens(tokens, DefaultDelimiter, false), nil
}

// FormatApproaches renders an approaches list. Present positions must
// be valid [Approach] members; anything else fails with
// [ErrUnknownApproach].
func FormatApproaches(approaches []Optional[Approach]) (Optional[string], error) {
	if approaches == nil {
		return None[string](), nil
	}

	tokens := make([]Optional[string], len(approaches))
	for i, approach := range approaches {
		a, ok := approach.Get()
		if !ok {
			tokens[i] = None[string]()
			continue
		}
		if !a.Valid() {
			return None[string](), &ValidationError{
				Position: i,
				Value:    a.String(),
				Err:      ErrUnknownApproach,
			}
		}
		tokens[i] = Some(a.String())
	}

	return JoinTokens(tokens, DefaultDelimiter, false), nil
}

// FormatRadiuses renders a radiuses list. A present token must equal
// [UnlimitedRadius] or parse as a non-negative decimal number; it is
// passed through as given, never re-canonicalized. Violations fail
// with [ErrInvalidRadius].
func FormatRadiuses(radiuses []Optional[string]) (Optional[string], error) {
	if radiuses == nil {
		return None[string](), nil
	}

	tokens := make([]Optional[string], len(radiuses))
	for i, radius := range radiuses {
		token, ok := radius.Get()
		if !ok {
			tokens[i] = None[string]()
			continue
		}
		if token != UnlimitedRadius {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil || !(v >= 0) {
				return None[string](), &ValidationError{
					Position: i,
					Value:    token,
					Err:      ErrInvalidRadius,
				}
			}
		}
		tokens[i] = Some(token)
	}

	return JoinTokens(tokens, DefaultDelimiter, false), nil
}

// FormatCoordinates renders a coordinates list. Unlike waypoint
// targets, a coordinates list has no absence concept: every element
// is a present point by construction. A nil slice yields an absent
// result.
func FormatCoordinates(coordinates []Point) Optional[string] {
	if coordinates == nil {
		return None[string]()
	}

	tokens := make([]Optional[string], len(coordinates))
	for i, point := range coordinates {
		tokens[i] = Some(point.String())
	}

	return JoinTokens(tokens, DefaultDelimiter, false)
}

// FormatWaypointTargets renders a waypoint targets list; absent
// positions stay empty on the wire.
func FormatWaypointTargets(targets []Optional[Point]) Optional[string] {
	return FormatList(targets, DefaultDelimiter, Point.String, false)
}

// FormatWaypointIndices renders a waypoint indices list. A nil slice
// yields an absent result; an empty one yields "".
func FormatWaypointIndices(indices []Optional[int]) Optional[string] {
	return FormatList(indices, DefaultDelimiter, strconv.Itoa, false)
}

// FormatWaypointNames renders a waypoint names list. Both a nil and an
// empty slice yield an absent result: an empty names parameter carries
// no information, so it is elided from the request entirely.
func FormatWaypointNames(names []Optional[string]) Optional[string] {
	if len(names) == 0 {
		return None[string]()
	}

	return JoinTokens(names, DefaultDelimiter, false)
}

// FormatAnnotations renders an annotations list, joined by a comma —
// annotations are scalar tokens, so the conventional inner delimiter
// doubles as the outer one for this field. Members must be valid
// [Annotation] values.
func FormatAnnotations(annotations []Annotation) (Optional[string], error) {
	if annotations == nil {
		return None[string](), nil
	}

	tokens := make([]Optional[string], len(annotations))
	for i, annotation := range annotations {
		if !annotation.Valid() {
			return None[string](), &ValidationError{
				Position: i,
				Value:    annotation.String(),
				Err:      ErrUnknownAnnotation,
			}
		}
		tokens[i] = Some(annotation.String())
	}

	return JoinTokens(tokens, InnerDelimiter, false), nil
}

// FormatSnappingClosures renders a snapping-include-closures list.
func FormatSnappingClosures(flags []Optional[bool]) Optional[string] {
	return FormatList(flags, DefaultDelimiter, strconv.FormatBool, false)
}
