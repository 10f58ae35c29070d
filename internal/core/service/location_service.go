package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
)

type LocationService struct {
	provider ports.LocationProvider
	logger   zerolog.Logger
}

// NewLocationService returns a LocationService backed by provider.
func NewLocationService(provider ports.LocationProvider, logger zerolog.Logger) *LocationService {
	return &LocationService{provider: provider, logger: logger}
}

// Current asks the provider for the device position and builds a GeoPoint
// from it. Provider errors are returned as-is; there is no retry and no cache.
func (s *LocationService) Current(ctx context.Context) (domain.GeoPoint, error) {
	pos, err := s.provider.CurrentPosition(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("location provider failed")
		return domain.GeoPoint{}, err
	}

	p, err := domain.New(pos)
	if err != nil {
		s.logger.Warn().Err(err).
			Float64("lat", pos.Latitude).
			Float64("lng", pos.Longitude).
			Msg("provider reported out-of-range position")
		return domain.GeoPoint{}, err
	}
	return p, nil
}

// CurrentAsync runs Current in the background. The returned channel receives
// exactly one result and is then closed.
func (s *LocationService) CurrentAsync(ctx context.Context) <-chan ports.LocationResult {
	out := make(chan ports.LocationResult, 1)
	go func() {
		defer close(out)
		p, err := s.Current(ctx)
		out <- ports.LocationResult{Point: p, Err: err}
	}()
	return out
}
