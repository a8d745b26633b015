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
	"errors"
	"fmt"
)

// Static errors for parse and format operations.
var (
	ErrInvalidBoolean    = errors.New(`boolean must be exactly "true" or "false"`)
	ErrPointArity        = errors.New("point must have exactly two components (lng,lat)")
	ErrBearingArity      = errors.New("bearing must have exactly two components (angle,tolerance)")
	ErrBearingRange      = errors.New("bearing angle and tolerance must be between 0 and 360")
	ErrDistributionArity = errors.New("distribution must have at least two components")
	ErrInvalidRadius     = errors.New(`radius must be a non-negative number or "unlimited"`)

	ErrUnknownProfile             = errors.New("unknown profile")
	ErrUnknownGeometry            = errors.New("unknown geometry")
	ErrUnknownOverview            = errors.New("unknown overview")
	ErrUnknownAnnotation          = errors.New("unknown annotation")
	ErrUnknownExclude             = errors.New("unknown exclude criterion")
	ErrUnknownInclude             = errors.New("unknown include criterion")
	ErrUnknownApproach            = errors.New(`approach must be "unrestricted" or "curb"`)
	ErrUnknownPaymentMethod       = errors.New("unknown payment method")
	ErrUnknownAmenityType         = errors.New("unknown amenity type")
	ErrUnknownVoiceUnits          = errors.New("unknown voice units")
	ErrUnknownWaypointSource      = errors.New("unknown waypoint source")
	ErrUnknownWaypointDestination = errors.New("unknown waypoint destination")
)

// ElementError reports a token that could not be parsed as its
// declared element type: bad integer or decimal syntax, a boolean
// other than "true"/"false", the wrong number of components in a
// compound element. The whole parse call fails; no partial sequence
// is returned.
//
// Use [errors.As] to recover the position and raw token:
//
//	var elemErr *directions.ElementError
//	if errors.As(err, &elemErr) {
//	    fmt.Printf("position %d: %q\n", elemErr.Position, elemErr.Token)
//	}
type ElementError struct {
	Position int    // Zero-based position in the delimited list
	Token    string // The raw token that failed to parse
	Err      error  // Underlying error
}

// Error returns a formatted error message.
func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: cannot parse %q: %v", e.Position, e.Token, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ElementError) Unwrap() error {
	return e.Err
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *ElementError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ElementError) Code() string {
	return "malformed_element"
}

// ValidationError reports a well-formed value that violates a
// field-specific rule: a bearing component outside [0, 360], a
// negative radius, an approach outside the accepted set. The whole
// format call fails on the first violation, in positional order; no
// partial output is produced.
type ValidationError struct {
	Position int    // Zero-based position in the sequence being formatted
	Value    string // Rendering of the offending value
	Err      error  // The violated rule
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("element %d: invalid value %q: %v", e.Position, e.Value, e.Err)
}

// Unwrap returns the violated rule for errors.Is/As compatibility.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e *ValidationError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ValidationError) Code() string {
	return "validation_violation"
}
