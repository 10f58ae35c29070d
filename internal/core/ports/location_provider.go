package ports

import (
	"context"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// LocationProvider reports the current position of the host device.
// Implementations return the provider's own error on failure (permission
// denied, lookup unavailable, ...).
type LocationProvider interface {
	CurrentPosition(ctx context.Context) (domain.Position, error)
}

// LocationResult is the single outcome delivered by LocationService.CurrentAsync.
type LocationResult struct {
	Point domain.GeoPoint
	Err   error
}

// LocationService turns provider positions into validated GeoPoints.
type LocationService interface {
	// Current blocks until the provider answers or ctx is done.
	Current(ctx context.Context) (domain.GeoPoint, error)
	// CurrentAsync delivers exactly one LocationResult and then closes the channel.
	CurrentAsync(ctx context.Context) <-chan LocationResult
}
