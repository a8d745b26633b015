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

package directions_test

import (
	"errors"
	"fmt"

	"rivaas.dev/directions"
)

func ExampleParsePoints() {
	waypoints, err := directions.ParsePoints(
		directions.Some("1.2,3.4;;;5.65,7.123"), directions.DefaultDelimiter)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, wp := range waypoints {
		if p, ok := wp.Get(); ok {
			fmt.Printf("%d: %s\n", i, p)
		} else {
			fmt.Printf("%d: (no target)\n", i)
		}
	}
	// Output:
	// 0: 1.2,3.4
	// 1: (no target)
	// 2: (no target)
	// 3: 5.65,7.123
}

func ExampleFormatBearings() {
	// The second waypoint has no bearing constraint.
	value, err := directions.FormatBearings([][]directions.Optional[float64]{
		directions.List(10.0, 20.0),
		nil,
		directions.List(45.0, 90.0),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	wire, _ := value.Get()
	fmt.Println(wire)
	// Output: 10,20;;45,90
}

func ExampleFormatBearings_validation() {
	_, err := directions.FormatBearings([][]directions.Optional[float64]{
		directions.List(370.0, 5.0),
	})

	fmt.Println(errors.Is(err, directions.ErrBearingRange))
	// Output: true
}

func ExampleJoinTokens() {
	tokens := []directions.Optional[string]{
		directions.Some("curb"),
		directions.None[string](),
		directions.Some("unrestricted"),
		directions.None[string](),
	}

	kept, _ := directions.JoinTokens(tokens, directions.DefaultDelimiter, false).Get()
	trimmed, _ := directions.JoinTokens(tokens, directions.DefaultDelimiter, true).Get()
	fmt.Printf("%q\n%q\n", kept, trimmed)
	// Output:
	// "curb;;unrestricted;"
	// "curb;;unrestricted"
}

func ExampleParseList() {
	// Criteria parsers compose with ParseList as element parsers.
	annotations, err := directions.ParseList(
		directions.Some("distance,congestion"),
		directions.InnerDelimiter,
		directions.ParseAnnotation,
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, a := range annotations {
		fmt.Println(a.OrZero())
	}
	// Output:
	// distance
	// congestion
}

func ExampleFormatFloat() {
	fmt.Println(directions.FormatFloat(5.0))
	fmt.Println(directions.FormatFloat(-122.419418))
	fmt.Println(directions.FormatFloat(5.123456789))
	// Output:
	// 5
	// -122.419418
	// 5.123457
}
