package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// Coordinate domains, inclusive on both ends.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Mean Earth radii used by the spherical distance helpers.
const (
	EarthRadiusKm    = 6371.0
	EarthRadiusMiles = 3958.8
)

// WireType is the discriminator value of a serialized GeoPoint.
const WireType = "GeoPoint"

const degToRad = math.Pi / 180

// ErrOutOfRange matches every *RangeError via errors.Is.
var ErrOutOfRange = errors.New("coordinate out of range")

// ErrWireType is returned when a decoded record carries a discriminator other than GeoPoint.
var ErrWireType = errors.New("record is not a GeoPoint")

// RangeError reports a latitude or longitude outside its domain.
type RangeError struct {
	Field string  // "latitude" or "longitude"
	Value float64 // offending value
	Bound float64 // violated bound
}

func (e *RangeError) Error() string {
	if math.IsNaN(e.Value) {
		return e.Field + " is NaN"
	}
	op := ">"
	if e.Value < e.Bound {
		op = "<"
	}
	return fmt.Sprintf("%s %s %.1f", e.Field, op, e.Bound)
}

// Is makes errors.Is(err, ErrOutOfRange) true for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Validate checks latitude against [-90, 90] and longitude against [-180, 180].
func Validate(lat, lng float64) error {
	switch {
	case math.IsNaN(lat):
		return &RangeError{Field: "latitude", Value: lat}
	case lat < MinLatitude:
		return &RangeError{Field: "latitude", Value: lat, Bound: MinLatitude}
	case lat > MaxLatitude:
		return &RangeError{Field: "latitude", Value: lat, Bound: MaxLatitude}
	case math.IsNaN(lng):
		return &RangeError{Field: "longitude", Value: lng}
	case lng < MinLongitude:
		return &RangeError{Field: "longitude", Value: lng, Bound: MinLongitude}
	case lng > MaxLongitude:
		return &RangeError{Field: "longitude", Value: lng, Bound: MaxLongitude}
	}
	return nil
}

// Input is one of the accepted construction shapes: Pair, Position or Scalars.
type Input interface {
	resolve() (lat, lng float64, ok bool)
}

// Pair is an ordered [latitude, longitude] pair.
type Pair [2]float64

func (p Pair) resolve() (float64, float64, bool) { return p[0], p[1], true }

// Position is a structured latitude/longitude object, as reported by location providers.
type Position struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (p Position) resolve() (float64, float64, bool) { return p.Latitude, p.Longitude, true }

// Scalars holds loose numeric arguments. Only exactly two values (latitude,
// longitude) are usable; any other count resolves to no input.
type Scalars []float64

func (s Scalars) resolve() (float64, float64, bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	return s[0], s[1], true
}

// GeoPoint is a validated latitude/longitude pair. Fields are unexported so
// that every write goes through Validate; the zero value is (0, 0).
type GeoPoint struct {
	lat float64
	lng float64
}

// New builds a GeoPoint from any supported input shape. A nil or unusable
// input yields (0, 0) without error.
func New(in Input) (GeoPoint, error) {
	if in == nil {
		return GeoPoint{}, nil
	}
	lat, lng, ok := in.resolve()
	if !ok {
		return GeoPoint{}, nil
	}
	if err := Validate(lat, lng); err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{lat: lat, lng: lng}, nil
}

// Usable reports whether in resolves to a coordinate pair rather than the
// (0, 0) fallback.
func Usable(in Input) bool {
	if in == nil {
		return false
	}
	_, _, ok := in.resolve()
	return ok
}

// NewGeoPoint is the two-scalar form of New.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	return New(Scalars{lat, lng})
}

func (p GeoPoint) Latitude() float64  { return p.lat }
func (p GeoPoint) Longitude() float64 { return p.lng }

// Position returns the point as a plain structured value.
func (p GeoPoint) Position() Position {
	return Position{Latitude: p.lat, Longitude: p.lng}
}

// SetLatitude replaces the latitude. The point is left untouched on error.
func (p *GeoPoint) SetLatitude(lat float64) error {
	if err := Validate(lat, p.lng); err != nil {
		return err
	}
	p.lat = lat
	return nil
}

// SetLongitude replaces the longitude. The point is left untouched on error.
func (p *GeoPoint) SetLongitude(lng float64) error {
	if err := Validate(p.lat, lng); err != nil {
		return err
	}
	p.lng = lng
	return nil
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.lat, p.lng)
}

// ── Wire form ────────────────────────────────────────────────────────────────

// Wire is the tagged record shape shared by JSON consumers and MongoDB.
type Wire struct {
	Type      string  `json:"__type" bson:"__type"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// ToWireForm re-validates the point and returns its tagged record.
func (p GeoPoint) ToWireForm() (Wire, error) {
	if err := Validate(p.lat, p.lng); err != nil {
		return Wire{}, err
	}
	return Wire{Type: WireType, Latitude: p.lat, Longitude: p.lng}, nil
}

// FromWireForm checks the discriminator and validates the coordinates.
// An empty discriminator is accepted.
func FromWireForm(w Wire) (GeoPoint, error) {
	if w.Type != "" && w.Type != WireType {
		return GeoPoint{}, fmt.Errorf("%w: __type=%q", ErrWireType, w.Type)
	}
	return New(Position{Latitude: w.Latitude, Longitude: w.Longitude})
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	w, err := p.ToWireForm()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (p *GeoPoint) UnmarshalJSON(b []byte) error {
	var w Wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	gp, err := FromWireForm(w)
	if err != nil {
		return err
	}
	*p = gp
	return nil
}

func (p GeoPoint) MarshalBSON() ([]byte, error) {
	w, err := p.ToWireForm()
	if err != nil {
		return nil, err
	}
	return bson.Marshal(w)
}

func (p *GeoPoint) UnmarshalBSON(b []byte) error {
	var w Wire
	if err := bson.Unmarshal(b, &w); err != nil {
		return err
	}
	gp, err := FromWireForm(w)
	if err != nil {
		return err
	}
	*p = gp
	return nil
}

// ── Distance ─────────────────────────────────────────────────────────────────

// AngularDistance returns the central angle in radians between p and other
// using the haversine formula.
func (p GeoPoint) AngularDistance(other GeoPoint) float64 {
	lat1 := p.lat * degToRad
	lat2 := other.lat * degToRad
	dLat := lat2 - lat1
	dLng := (other.lng - p.lng) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push a just above 1, outside the asin domain
	a = math.Min(a, 1.0)

	return 2 * math.Asin(math.Sqrt(a))
}

// KilometersTo returns the great-circle distance in kilometers.
func (p GeoPoint) KilometersTo(other GeoPoint) float64 {
	return p.AngularDistance(other) * EarthRadiusKm
}

// MilesTo returns the great-circle distance in miles.
func (p GeoPoint) MilesTo(other GeoPoint) float64 {
	return p.AngularDistance(other) * EarthRadiusMiles
}

// Unit selects the scale of a distance.
type Unit string

const (
	UnitRadians    Unit = "rad"
	UnitKilometers Unit = "km"
	UnitMiles      Unit = "mi"
)

var ErrUnknownUnit = errors.New("unknown distance unit")

// ParseUnit maps a query value to a Unit. Empty means kilometers.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case "", UnitKilometers:
		return UnitKilometers, nil
	case UnitMiles:
		return UnitMiles, nil
	case UnitRadians:
		return UnitRadians, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// DistanceIn returns the distance to other expressed in unit.
func (p GeoPoint) DistanceIn(other GeoPoint, unit Unit) float64 {
	switch unit {
	case UnitMiles:
		return p.MilesTo(other)
	case UnitRadians:
		return p.AngularDistance(other)
	default:
		return p.KilometersTo(other)
	}
}
