package ports

import (
	"context"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// CreateRecordInput carries the data needed to create a record. Location may
// be nil, in which case the record is tagged with (0, 0).
type CreateRecordInput struct {
	Name     string
	Tags     []string
	Location domain.Input
}

// DistanceResult is the distance between two records in every supported unit.
type DistanceResult struct {
	From       domain.GeoPoint
	To         domain.GeoPoint
	Radians    float64
	Kilometers float64
	Miles      float64
	Unit       domain.Unit
	Value      float64 // distance expressed in Unit
}

// RecordService defines the use cases over location-tagged records.
type RecordService interface {
	Create(ctx context.Context, in CreateRecordInput) (*domain.Record, error)
	Get(ctx context.Context, id string) (*domain.Record, error)
	Relocate(ctx context.Context, id string, loc domain.Input) (*domain.Record, error)
	Distance(ctx context.Context, fromID, toID string, unit domain.Unit) (*DistanceResult, error)
}
