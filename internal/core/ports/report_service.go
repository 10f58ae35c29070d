package ports

import (
	"context"
	"time"

	"github.com/99minutos/geopoint/internal/core/domain"
)

// ReportInput is the DTO passed from the transport layer to ReportService.
type ReportInput struct {
	DeviceID  string
	Latitude  float64
	Longitude float64
	Timestamp time.Time
	Source    string
}

// ReportService processes device location reports.
type ReportService interface {
	Process(ctx context.Context, in ReportInput) error
	LastKnown(ctx context.Context, deviceID string) (*domain.LocationReport, error)
}
