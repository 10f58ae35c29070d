package domain

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("record not found")

// Record is a named entry tagged with exactly one location. The record owns
// its GeoPoint by value.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Location  GeoPoint  `json:"location" bson:"location"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
