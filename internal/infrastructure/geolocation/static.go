package geolocation

import (
	"context"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// StaticProvider reports a fixed, configured position. A nil position makes
// every lookup fail with ErrPositionUnavailable.
type StaticProvider struct {
	pos *domain.Position
}

func NewStaticProvider(pos *domain.Position) *StaticProvider {
	return &StaticProvider{pos: pos}
}

func (p *StaticProvider) CurrentPosition(ctx context.Context) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	if p.pos == nil {
		return domain.Position{}, ErrPositionUnavailable
	}
	return *p.pos, nil
}
