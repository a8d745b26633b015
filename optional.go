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

import "fmt"

// Optional is a value that is either present or absent. It replaces
// nullable references for list positions so the present/absent
// distinction is checked at compile time.
//
// The zero value is absent. Optional values are immutable; methods
// never mutate the receiver.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
// The value is the zero value of T when absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.present
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}

// String renders the value for debugging. Wire rendering is the
// formatters' job; this is only used by %v in tests and logs.
func (o Optional[T]) String() string {
	if !o.present {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.value)
}

// List builds an all-present sequence from plain values:
//
//	directions.List(1, 4, 5) // [Some(1), Some(4), Some(5)]
//
// Positions that should be absent are expressed with None:
//
//	[]directions.Optional[int]{directions.Some(1), directions.None[int]()}
func List[T any](vs ...T) []Optional[T] {
	out := make([]Optional[T], len(vs))
	for i, v := range vs {
		out[i] = Some(v)
	}
	return out
}
