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

// The enumerated criteria of a directions request are closed sets.
// Each category is an int-backed enum whose zero value is the unknown
// member: String() renders the wire token, Valid() reports membership,
// and ParseX() is the exhaustive-match validator used when reading
// wire strings. The parsers compose with ParseStrings for list-valued
// fields:
//
//	tokens, err := directions.ParseStrings(input, directions.InnerDelimiter)
//	// then ParseAnnotation over each present token

// Profile selects the routing profile.
type Profile int

const (
	// ProfileUnknown is an unspecified profile.
	ProfileUnknown Profile = iota

	// ProfileDrivingTraffic routes for cars honoring live traffic.
	ProfileDrivingTraffic

	// ProfileDriving routes for cars.
	ProfileDriving

	// ProfileWalking routes for pedestrians.
	ProfileWalking

	// ProfileCycling routes for bicycles.
	ProfileCycling
)

// String returns the wire token for the profile.
func (p Profile) String() string {
	switch p {
	case ProfileDrivingTraffic:
		return "driving-traffic"
	case ProfileDriving:
		return "driving"
	case ProfileWalking:
		return "walking"
	case ProfileCycling:
		return "cycling"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a known profile.
func (p Profile) Valid() bool {
	return p > ProfileUnknown && p <= ProfileCycling
}

// ParseProfile maps a wire token to its Profile.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "driving-traffic":
		return ProfileDrivingTraffic, nil
	case "driving":
		return ProfileDriving, nil
	case "walking":
		return ProfileWalking, nil
	case "cycling":
		return ProfileCycling, nil
	default:
		return ProfileUnknown, fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}

// Geometry selects the encoding of returned route geometries.
type Geometry int

const (
	GeometryUnknown Geometry = iota
	GeometryPolyline
	GeometryPolyline6
)

// String returns the wire token for the geometry encoding.
func (g Geometry) String() string {
	switch g {
	case GeometryPolyline:
		return "polyline"
	case GeometryPolyline6:
		return "polyline6"
	default:
		return "unknown"
	}
}

// Valid reports whether g is a known geometry encoding.
func (g Geometry) Valid() bool {
	return g > GeometryUnknown && g <= GeometryPolyline6
}

// ParseGeometry maps a wire token to its Geometry.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "polyline":
		return GeometryPolyline, nil
	case "polyline6":
		return GeometryPolyline6, nil
	default:
		return GeometryUnknown, fmt.Errorf("%w: %q", ErrUnknownGeometry, s)
	}
}

// Overview selects how much route overview geometry is returned.
type Overview int

const (
	OverviewUnknown Overview = iota
	OverviewSimplified
	OverviewFull

	// OverviewFalse requests no overview geometry at all. Its wire
	// token is the literal "false".
	OverviewFalse
)

// String returns the wire token for the overview level.
func (o Overview) String() string {
	switch o {
	case OverviewSimplified:
		return "simplified"
	case OverviewFull:
		return "full"
	case OverviewFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Valid reports whether o is a known overview level.
func (o Overview) Valid() bool {
	return o > OverviewUnknown && o <= OverviewFalse
}

// ParseOverview maps a wire token to its Overview.
func ParseOverview(s string) (Overview, error) {
	switch s {
	case "simplified":
		return OverviewSimplified, nil
	case "full":
		return OverviewFull, nil
	case "false":
		return OverviewFalse, nil
	default:
		return OverviewUnknown, fmt.Errorf("%w: %q", ErrUnknownOverview, s)
	}
}

// Annotation selects a per-segment metadata stream to include in the
// response.
type Annotation int

const (
	AnnotationUnknown Annotation = iota
	AnnotationDuration
	AnnotationDistance
	AnnotationSpeed
	AnnotationCongestion
	AnnotationCongestionNumeric
	AnnotationMaxspeed
	AnnotationClosure
	AnnotationTrafficTendency
)

// String returns the wire token for the annotation.
func (a Annotation) String() string {
	switch a {
	case AnnotationDuration:
		return "duration"
	case AnnotationDistance:
		return "distance"
	case AnnotationSpeed:
		return "speed"
	case AnnotationCongestion:
		return "congestion"
	case AnnotationCongestionNumeric:
		return "congestion_numeric"
	case AnnotationMaxspeed:
		return "maxspeed"
	case AnnotationClosure:
		return "closure"
	case AnnotationTrafficTendency:
		return "traffic_tendency"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a known annotation.
func (a Annotation) Valid() bool {
	return a > AnnotationUnknown && a <= AnnotationTrafficTendency
}

// ParseAnnotation maps a wire token to its Annotation.
func ParseAnnotation(s string) (Annotation, error) {
	switch s {
	case "duration":
		return AnnotationDuration, nil
	case "distance":
		return AnnotationDistance, nil
	case "speed":
		return AnnotationSpeed, nil
	case "congestion":
		return AnnotationCongestion, nil
	case "congestion_numeric":
		return AnnotationCongestionNumeric, nil
	case "maxspeed":
		return AnnotationMaxspeed, nil
	case "closure":
		return AnnotationClosure, nil
	case "traffic_tendency":
		return AnnotationTrafficTendency, nil
	default:
		return AnnotationUnknown, fmt.Errorf("%w: %q", ErrUnknownAnnotation, s)
	}
}

// Exclude names a road class or toll category to avoid.
type Exclude int

const (
	ExcludeUnknown Exclude = iota
	ExcludeToll
	ExcludeMotorway
	ExcludeFerry
	ExcludeTunnel
	ExcludeRestricted
	ExcludeCashOnlyTolls
	ExcludeUnpaved
)

// String returns the wire token for the exclude criterion.
func (e Exclude) String() string {
	switch e {
	case ExcludeToll:
		return "toll"
	case ExcludeMotorway:
		return "motorway"
	case ExcludeFerry:
		return "ferry"
	case ExcludeTunnel:
		return "tunnel"
	case ExcludeRestricted:
		return "restricted"
	case ExcludeCashOnlyTolls:
		return "cash_only_tolls"
	case ExcludeUnpaved:
		return "unpaved"
	default:
		return "unknown"
	}
}

// Valid reports whether e is a known exclude criterion.
func (e Exclude) Valid() bool {
	return e > ExcludeUnknown && e <= ExcludeUnpaved
}

// ParseExclude maps a wire token to its Exclude.
func ParseExclude(s string) (Exclude, error) {
	switch s {
	case "toll":
		return ExcludeToll, nil
	case "motorway":
		return ExcludeMotorway, nil
	case "ferry":
		return ExcludeFerry, nil
	case "tunnel":
		return ExcludeTunnel, nil
	case "restricted":
		return ExcludeRestricted, nil
	case "cash_only_tolls":
		return ExcludeCashOnlyTolls, nil
	case "unpaved":
		return ExcludeUnpaved, nil
	default:
		return ExcludeUnknown, fmt.Errorf("%w: %q", ErrUnknownExclude, s)
	}
}

// Include names a road class to prefer.
type Include int

const (
	IncludeUnknown Include = iota
	IncludeHov2
	IncludeHov3
	IncludeHot
)

// String returns the wire token for the include criterion.
func (i Include) String() string {
	switch i {
	case IncludeHov2:
		return "hov2"
	case IncludeHov3:
		return "hov3"
	case IncludeHot:
		return "hot"
	default:
		return "unknown"
	}
}

// Valid reports whether i is a known include criterion.
func (i Include) Valid() bool {
	return i > IncludeUnknown && i <= IncludeHot
}

// ParseInclude maps a wire token to its Include.
func ParseInclude(s string) (Include, error) {
	switch s {
	case "hov2":
		return IncludeHov2, nil
	case "hov3":
		return IncludeHov3, nil
	case "hot":
		return IncludeHot, nil
	default:
		return IncludeUnknown, fmt.Errorf("%w: %q", ErrUnknownInclude, s)
	}
}

// Approach constrains which side of the road a waypoint is approached
// from.
type Approach int

const (
	ApproachUnknown Approach = iota
	ApproachUnrestricted
	ApproachCurb
)

// String returns the wire token for the approach.
func (a Approach) String() string {
	switch a {
	case ApproachUnrestricted:
		return "unrestricted"
	case ApproachCurb:
		return "curb"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a known approach.
func (a Approach) Valid() bool {
	return a == ApproachUnrestricted || a == ApproachCurb
}

// ParseApproach maps a wire token to its Approach.
func ParseApproach(s string) (Approach, error) {
	switch s {
	case "unrestricted":
		return ApproachUnrestricted, nil
	case "curb":
		return ApproachCurb, nil
	default:
		return ApproachUnknown, fmt.Errorf("%w: %q", ErrUnknownApproach, s)
	}
}

// PaymentMethod names a toll payment method.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodGeneral
	PaymentMethodETC
	PaymentMethodETCX
	PaymentMethodCash
	PaymentMethodExactCash
	PaymentMethodCoins
	PaymentMethodNotes
	PaymentMethodDebitCards
	PaymentMethodPassCard
	PaymentMethodCreditCards
	PaymentMethodVideo
	PaymentMethodCryptocurrencies
	PaymentMethodApp
)

// String returns the wire token for the payment method.
func (p PaymentMethod) String() string {
	switch p {
	case PaymentMethodGeneral:
		return "general"
	case PaymentMethodETC:
		return "etc"
	case PaymentMethodETCX:
		return "etcx"
	case PaymentMethodCash:
		return "cash"
	case PaymentMethodExactCash:
		return "exact_cash"
	case PaymentMethodCoins:
		return "coins"
	case PaymentMethodNotes:
		return "notes"
	case PaymentMethodDebitCards:
		return "debit_cards"
	case PaymentMethodPassCard:
		return "pass_card"
	case PaymentMethodCreditCards:
		return "credit_cards"
	case PaymentMethodVideo:
		return "video"
	case PaymentMethodCryptocurrencies:
		return "cryptocurrencies"
	case PaymentMethodApp:
		return "app"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a known payment method.
func (p PaymentMethod) Valid() bool {
	return p > PaymentMethodUnknown && p <= PaymentMethodApp
}

// ParsePaymentMethod maps a wire token to its PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "general":
		return PaymentMethodGeneral, nil
	case "etc":
		return PaymentMethodETC, nil
	case "etcx":
		return PaymentMethodETCX, nil
	case "cash":
		return PaymentMethodCash, nil
	case "exact_cash":
		return PaymentMethodExactCash, nil
	case "coins":
		return PaymentMethodCoins, nil
	case "notes":
		return PaymentMethodNotes, nil
	case "debit_cards":
		return PaymentMethodDebitCards, nil
	case "pass_card":
		return PaymentMethodPassCard, nil
	case "credit_cards":
		return PaymentMethodCreditCards, nil
	case "video":
		return PaymentMethodVideo, nil
	case "cryptocurrencies":
		return PaymentMethodCryptocurrencies, nil
	case "app":
		return PaymentMethodApp, nil
	default:
		return PaymentMethodUnknown, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}

// AmenityType names a rest-stop amenity.
type AmenityType int

const (
	AmenityTypeUnknown AmenityType = iota
	AmenityTypeGasStation
	AmenityTypeElectricChargingStation
	AmenityTypeToilet
	AmenityTypeCoffee
	AmenityTypeRestaurant
	AmenityTypeSnack
	AmenityTypeATM
	AmenityTypeInfo
	AmenityTypeBabyCare
	AmenityTypeFacilitiesForDisabled
	AmenityTypeShop
	AmenityTypeTelephone
	AmenityTypeHotel
	AmenityTypeHotspring
	AmenityTypeShower
	AmenityTypePicnicShelter
	AmenityTypePost
	AmenityTypeFax
)

// String returns the wire token for the amenity type. Two tokens are
// uppercase on the wire ("ATM", "FAX"); that casing is preserved.
func (a AmenityType) String() string {
	switch a {
	case AmenityTypeGasStation:
		return "gas_station"
	case AmenityTypeElectricChargingStation:
		return "electric_charging_station"
	case AmenityTypeToilet:
		return "toilet"
	case AmenityTypeCoffee:
		return "coffee"
	case AmenityTypeRestaurant:
		return "restaurant"
	case AmenityTypeSnack:
		return "snack"
	case AmenityTypeATM:
		return "ATM"
	case AmenityTypeInfo:
		return "info"
	case AmenityTypeBabyCare:
		return "baby_care"
	case AmenityTypeFacilitiesForDisabled:
		return "facilities_for_disabled"
	case AmenityTypeShop:
		return "shop"
	case AmenityTypeTelephone:
		return "telephone"
	case AmenityTypeHotel:
		return "hotel"
	case AmenityTypeHotspring:
		return "hotspring"
	case AmenityTypeShower:
		return "shower"
	case AmenityTypePicnicShelter:
		return "picnic_shelter"
	case AmenityTypePost:
		return "post"
	case AmenityTypeFax:
		return "FAX"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a known amenity type.
func (a AmenityType) Valid() bool {
	return a > AmenityTypeUnknown && a <= AmenityTypeFax
}

// ParseAmenityType maps a wire token to its AmenityType.
func ParseAmenityType(s string) (AmenityType, error) {
	switch s {
	case "gas_station":
		return AmenityTypeGasStation, nil
	case "electric_charging_station":
		return AmenityTypeElectricChargingStation, nil
	case "toilet":
		return AmenityTypeToilet, nil
	case "coffee":
		return AmenityTypeCoffee, nil
	case "restaurant":
		return AmenityTypeRestaurant, nil
	case "snack":
		return AmenityTypeSnack, nil
	case "ATM":
		return AmenityTypeATM, nil
	case "info":
		return AmenityTypeInfo, nil
	case "baby_care":
		return AmenityTypeBabyCare, nil
	case "facilities_for_disabled":
		return AmenityTypeFacilitiesForDisabled, nil
	case "shop":
		return AmenityTypeShop, nil
	case "telephone":
		return AmenityTypeTelephone, nil
	case "hotel":
		return AmenityTypeHotel, nil
	case "hotspring":
		return AmenityTypeHotspring, nil
	case "shower":
		return AmenityTypeShower, nil
	case "picnic_shelter":
		return AmenityTypePicnicShelter, nil
	case "post":
		return AmenityTypePost, nil
	case "FAX":
		return AmenityTypeFax, nil
	default:
		return AmenityTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownAmenityType, s)
	}
}

// VoiceUnits selects the unit system for spoken instructions.
type VoiceUnits int

const (
	VoiceUnitsUnknown VoiceUnits = iota
	VoiceUnitsImperial
	VoiceUnitsMetric
)

// String returns the wire token for the unit system.
func (v VoiceUnits) String() string {
	switch v {
	case VoiceUnitsImperial:
		return "imperial"
	case VoiceUnitsMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a known unit system.
func (v VoiceUnits) Valid() bool {
	return v == VoiceUnitsImperial || v == VoiceUnitsMetric
}

// ParseVoiceUnits maps a wire token to its VoiceUnits.
func ParseVoiceUnits(s string) (VoiceUnits, error) {
	switch s {
	case "imperial":
		return VoiceUnitsImperial, nil
	case "metric":
		return VoiceUnitsMetric, nil
	default:
		return VoiceUnitsUnknown, fmt.Errorf("%w: %q", ErrUnknownVoiceUnits, s)
	}
}

// WaypointSource constrains which coordinate an optimized trip may
// start from.
type WaypointSource int

const (
	WaypointSourceUnknown WaypointSource = iota
	WaypointSourceFirst
	WaypointSourceAny
)

// String returns the wire token for the source constraint.
func (w WaypointSource) String() string {
	switch w {
	case WaypointSourceFirst:
		return "first"
	case WaypointSourceAny:
		return "any"
	default:
		return "unknown"
	}
}

// Valid reports whether w is a known source constraint.
func (w WaypointSource) Valid() bool {
	return w == WaypointSourceFirst || w == WaypointSourceAny
}

// ParseWaypointSource maps a wire token to its WaypointSource.
func ParseWaypointSource(s string) (WaypointSource, error) {
	switch s {
	case "first":
		return WaypointSourceFirst, nil
	case "any":
		return WaypointSourceAny, nil
	default:
		return WaypointSourceUnknown, fmt.Errorf("%w: %q", ErrUnknownWaypointSource, s)
	}
}

// WaypointDestination constrains which coordinate an optimized trip
// may end at.
type WaypointDestination int

const (
	WaypointDestinationUnknown WaypointDestination = iota
	WaypointDestinationAny
	WaypointDestinationLast
)

// String returns the wire token for the destination constraint.
func (w WaypointDestination) String() string {
	switch w {
	case WaypointDestinationAny:
		return "any"
	case WaypointDestinationLast:
		return "last"
	default:
		return "unknown"
	}
}

// Valid reports whether w is a known destination constraint.
func (w WaypointDestination) Valid() bool {
	return w == WaypointDestinationAny || w == WaypointDestinationLast
}

// ParseWaypointDestination maps a wire token to its WaypointDestination.
func ParseWaypointDestination(s string) (WaypointDestination, error) {
	switch s {
	case "any":
		return WaypointDestinationAny, nil
	case "last":
		return WaypointDestinationLast, nil
	default:
		return WaypointDestinationUnknown, fmt.Errorf("%w: %q", ErrUnknownWaypointDestination, s)
	}
}
