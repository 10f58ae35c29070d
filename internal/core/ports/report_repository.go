package ports

import (
	"context"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// ReportRepository persists the history of device location reports.
type ReportRepository interface {
	Insert(ctx context.Context, report *domain.LocationReport) error
}

// LastLocationStore keeps the most recent report per device.
type LastLocationStore interface {
	Put(ctx context.Context, report *domain.LocationReport) error
	// Get returns domain.ErrLocationUnknown when the device never reported.
	Get(ctx context.Context, deviceID string) (*domain.LocationReport, error)
}

// ReportPublisher announces accepted reports to downstream consumers.
type ReportPublisher interface {
	PublishRecorded(ctx context.Context, report *domain.LocationReport) error
}
