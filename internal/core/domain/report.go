package domain

import (
	"errors"
	"time"
)

var ErrLocationUnknown = errors.New("no known location for device")
var ErrForbidden = errors.New("access forbidden")

// LocationReport is a position reported by a device at a point in time.
type LocationReport struct {
	DeviceID   string    `json:"device_id" bson:"device_id"`
	Location   GeoPoint  `json:"location" bson:"location"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	Source     string    `json:"source" bson:"source"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}
