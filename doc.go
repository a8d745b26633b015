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

// Package directions is a textual codec for the list-valued query
// parameters of routing and directions web APIs.
//
// Many directions parameters (coordinates, bearings, radiuses,
// approaches, annotations, waypoint indices, per-leg distributions)
// travel on the wire as delimiter-separated lists in which individual
// positions may be deliberately empty: "1;;3" carries a value at
// positions 0 and 2 and an explicit hole at position 1. The hole is
// distinct from the position not existing, and a parameter that was
// never supplied is distinct from one supplied as the empty string.
// This package parses such strings into position-preserving typed
// sequences and formats typed sequences back into canonical wire
// strings, applying the field-specific validation rules along the way.
//
// # Quick Start
//
// Parsing reconstructs typed sequences from wire strings:
//
//	points, err := directions.ParsePoints(
//	    directions.Some("1.2,3.4;;5.65,7.123"), directions.DefaultDelimiter)
//	// [Some(Point{1.2, 3.4}), None, Some(Point{5.65, 7.123})]
//
// Formatting produces the string for one query-parameter value slot:
//
//	value, err := directions.FormatBearings([][]directions.Optional[float64]{
//	    directions.List(10.0, 20.0),
//	    nil,
//	    directions.List(45.0, 90.0),
//	})
//	// Some("10,20;;45,90")
//
// # Absence
//
// Three states are kept apart end to end:
//
//   - parameter not supplied: an absent Optional[string] input, a nil
//     slice output (and the reverse on the format side)
//   - parameter supplied but empty: "" parses to a non-nil zero-length
//     slice, which formats back to ""
//   - an empty position inside a supplied list: None at that index
//
// # Delimiters
//
// The outer delimiter separates list positions; compound elements
// (points, bearings, distributions) use an inner delimiter between
// their components. The conventional pair is [DefaultDelimiter] (";")
// outside and [InnerDelimiter] (",") inside. Callers choosing a comma
// as the outer delimiter must pick a different inner one; the codec
// never inspects tokens for embedded delimiters.
//
// # Numbers
//
// All decimal numbers render through [FormatFloat]: at most six
// fractional digits, trailing zeros stripped, "." as the decimal
// separator regardless of host locale, never scientific notation.
// Format-then-parse is the identity for any sequence, and
// parse-then-format reproduces the input string whenever its numeric
// tokens are already canonical.
//
// # Criteria
//
// The legal values of enumerated fields (profile, geometry, overview,
// annotation, exclude, include, approach, payment method, amenity
// type) are closed enums with exhaustive validators rather than open
// string sets; see [Profile], [Annotation], [Approach] and friends.
// Their parsers compose with [ParseStrings] for list-valued fields.
//
// # Error Handling
//
// Failures are whole-call: no partial sequence or string is ever
// returned. A token that cannot be parsed as its element type yields
// an [*ElementError]; a well-formed value that breaks a field rule
// (bearing angle outside [0, 360], unknown approach, negative radius)
// yields a [*ValidationError]. Both unwrap to per-rule sentinel
// errors:
//
//	_, err := directions.FormatBearings(bearings)
//	if errors.Is(err, directions.ErrBearingRange) {
//	    // angle or tolerance outside [0, 360]
//	}
//
// Every function in this package is a pure computation over its
// arguments and is safe for concurrent use.
package directions
