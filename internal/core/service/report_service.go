package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/metrics"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, deviceID string, ts time.Time) (bool, error)
	Mark(ctx context.Context, deviceID string, ts time.Time) error
}

type reportService struct {
	last      ports.LastLocationStore
	history   ports.ReportRepository
	publisher ports.ReportPublisher
	dedup     DedupChecker
	log       zerolog.Logger
	now       func() time.Time
}

// NewReportService returns a ReportService implementation. publisher may be
// nil when no message broker is configured.
func NewReportService(
	last ports.LastLocationStore,
	history ports.ReportRepository,
	publisher ports.ReportPublisher,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.ReportService {
	return &reportService{
		last:      last,
		history:   history,
		publisher: publisher,
		dedup:     dedup,
		log:       log,
		now:       time.Now,
	}
}

// Process validates, deduplicates, and persists a single location report.
func (s *reportService) Process(ctx context.Context, in ports.ReportInput) (err error) {
	start := s.now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.ReportProcessingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()

	// 1. Idempotency check: duplicates are skipped silently.
	isDup, err := s.dedup.IsDuplicate(ctx, in.DeviceID, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("device", in.DeviceID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ReportsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("device", in.DeviceID).Time("ts", in.Timestamp).Msg("duplicate report skipped")
		return nil
	} else {
		metrics.ReportsDedupTotal.WithLabelValues("miss").Inc()
	}

	// 2. Build the point; out-of-range reports are rejected.
	loc, err := domain.NewGeoPoint(in.Latitude, in.Longitude)
	if err != nil {
		metrics.ReportsErrorsTotal.WithLabelValues("out_of_range").Inc()
		return fmt.Errorf("process report: %w", err)
	}

	report := &domain.LocationReport{
		DeviceID:   in.DeviceID,
		Location:   loc,
		Timestamp:  in.Timestamp.UTC(),
		Source:     in.Source,
		ReceivedAt: s.now().UTC(),
	}

	// 3. Update last known position unless a newer report is already stored.
	if s.isNewest(ctx, report) {
		if err := s.last.Put(ctx, report); err != nil {
			metrics.ReportsErrorsTotal.WithLabelValues("store_failed").Inc()
			return fmt.Errorf("process report: store last location: %w", err)
		}
	}

	// 4. Append to history (non-fatal on failure).
	if err := s.history.Insert(ctx, report); err != nil {
		metrics.ReportsErrorsTotal.WithLabelValues("history_failed").Inc()
		s.log.Warn().Err(err).Str("device", in.DeviceID).Msg("failed to insert report history")
	}

	// 5. Mark as processed only once the report is stored, so a failed
	// attempt can be retried.
	if markErr := s.dedup.Mark(ctx, in.DeviceID, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("device", in.DeviceID).Msg("failed to set dedup key")
	}

	// 6. Announce (non-fatal on failure).
	if s.publisher != nil {
		if err := s.publisher.PublishRecorded(ctx, report); err != nil {
			s.log.Warn().Err(err).Str("device", in.DeviceID).Msg("failed to publish report")
		}
	}

	metrics.ReportsProcessedTotal.WithLabelValues(in.Source).Inc()
	s.log.Info().
		Str("device", in.DeviceID).
		Stringer("location", loc).
		Str("source", in.Source).
		Msg("report processed")

	return nil
}

// LastKnown returns the most recent report stored for a device.
func (s *reportService) LastKnown(ctx context.Context, deviceID string) (*domain.LocationReport, error) {
	return s.last.Get(ctx, deviceID)
}

// isNewest reports whether report is at least as recent as the stored one.
// Lookup failures other than "unknown" are logged and treated as newest.
func (s *reportService) isNewest(ctx context.Context, report *domain.LocationReport) bool {
	current, err := s.last.Get(ctx, report.DeviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrLocationUnknown) {
			s.log.Warn().Err(err).Str("device", report.DeviceID).Msg("last location lookup failed")
		}
		return true
	}
	if current.Timestamp.After(report.Timestamp) {
		s.log.Debug().Str("device", report.DeviceID).Msg("stale report, last location kept")
		return false
	}
	return true
}
