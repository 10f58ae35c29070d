package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/99minutos/geopoint/internal/core/domain"
)

var errInvalidLocation = errors.New("location must be a [latitude, longitude] array or an object")

// decodeLocation maps a raw JSON location onto a construction input:
//
//	[lat, lng]                          → domain.Pair
//	[...] with any other length         → domain.Scalars (resolves to (0, 0))
//	{"latitude": .., "longitude": ..}   → domain.Position
//	absent, null, or an incomplete obj  → nil (resolves to (0, 0))
//
// An object carrying a "__type" other than GeoPoint is rejected.
func decodeLocation(raw json.RawMessage) (domain.Input, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var vals []float64
		if err := json.Unmarshal(raw, &vals); err != nil {
			return nil, errInvalidLocation
		}
		if len(vals) == 2 {
			return domain.Pair{vals[0], vals[1]}, nil
		}
		return domain.Scalars(vals), nil
	case '{':
		var obj struct {
			Type      string   `json:"__type"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, errInvalidLocation
		}
		if obj.Type != "" && obj.Type != domain.WireType {
			return nil, fmt.Errorf("%w: __type=%q", domain.ErrWireType, obj.Type)
		}
		if obj.Latitude == nil || obj.Longitude == nil {
			return nil, nil
		}
		return domain.Position{Latitude: *obj.Latitude, Longitude: *obj.Longitude}, nil
	}
	return nil, nil
}

type coordinatesRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func (r coordinatesRequest) point() (domain.GeoPoint, error) {
	return domain.NewGeoPoint(*r.Latitude, *r.Longitude)
}

type distanceRequest struct {
	From coordinatesRequest `json:"from"`
	To   coordinatesRequest `json:"to"`
	Unit string             `json:"unit" validate:"omitempty,oneof=km mi rad"`
}

type distanceResponse struct {
	From       domain.GeoPoint `json:"from"`
	To         domain.GeoPoint `json:"to"`
	Radians    float64         `json:"radians"`
	Kilometers float64         `json:"kilometers"`
	Miles      float64         `json:"miles"`
	Unit       string          `json:"unit"`
	Value      float64         `json:"value"`
}

type createRecordRequest struct {
	Name               string          `json:"name" validate:"required"`
	Tags               []string        `json:"tags"`
	Location           json.RawMessage `json:"location" swaggertype:"object"`
	UseCurrentLocation bool            `json:"use_current_location"`
}

type relocateRequest struct {
	Location json.RawMessage `json:"location" swaggertype:"object" validate:"required"`
}

type reportRequest struct {
	DeviceID  string    `json:"device_id" validate:"required,device_id"`
	Latitude  *float64  `json:"latitude"  validate:"required"`
	Longitude *float64  `json:"longitude" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source"    validate:"required,oneof=gps network manual"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// ErrorResponse is the canonical error envelope for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RangeErrorResponse describes a rejected coordinate.
type RangeErrorResponse struct {
	Error string   `json:"error"`
	Field string   `json:"field"`
	Value *float64 `json:"value,omitempty"`
	Bound *float64 `json:"bound,omitempty"`
}
