package ports

import (
	"context"
	"time"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// RecordRepository defines persistence operations for location-tagged records.
type RecordRepository interface {
	Create(ctx context.Context, r *domain.Record) error
	// FindByID returns domain.ErrRecordNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Record, error)
	// UpdateLocation replaces the record location and bumps updated_at.
	UpdateLocation(ctx context.Context, id string, loc domain.GeoPoint, at time.Time) error
}
