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

// Point is a 2-D geographic position. The wire order is longitude
// first, latitude second, matching the "lng,lat" convention of
// directions APIs.
type Point struct {
	Lng float64
	Lat float64
}

// NewPoint returns a Point at the given longitude and latitude.
func NewPoint(lng, lat float64) Point {
	return Point{Lng: lng, Lat: lat}
}

// String renders the point in canonical wire form: both components
// through FormatFloat, joined by the inner comma.
func (p Point) String() string {
	return FormatFloat(p.Lng) + InnerDelimiter + FormatFloat(p.Lat)
}
