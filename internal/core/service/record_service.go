package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/metrics"
)

type RecordService struct {
	repo   ports.RecordRepository
	logger zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, logger zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, logger: logger}
}

// Create tags a new record with the given location. A missing or unusable
// location tags the record with (0, 0).
func (s *RecordService) Create(ctx context.Context, in ports.CreateRecordInput) (*domain.Record, error) {
	loc, err := domain.New(in.Location)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	located := domain.Usable(in.Location)
	if !located {
		s.logger.Debug().Str("name", in.Name).Msg("record created without usable location, defaulting to (0, 0)")
	}

	now := time.Now().UTC()
	rec := &domain.Record{
		ID:        generateRecordID(),
		Name:      in.Name,
		Location:  loc,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error().Err(err).Msg("failed to create record")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(strconv.FormatBool(located)).Inc()
	s.logger.Info().Str("record_id", rec.ID).Stringer("location", rec.Location).Msg("record created")

	return rec, nil
}

// Get returns a single record by ID.
func (s *RecordService) Get(ctx context.Context, id string) (*domain.Record, error) {
	return s.repo.FindByID(ctx, id)
}

// Relocate moves an existing record to a new location.
func (s *RecordService) Relocate(ctx context.Context, id string, in domain.Input) (*domain.Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loc, err := domain.New(in)
	if err != nil {
		return nil, fmt.Errorf("relocate record: %w", err)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLocation(ctx, id, loc, now); err != nil {
		return nil, fmt.Errorf("relocate record: %w", err)
	}

	s.logger.Info().
		Str("record_id", id).
		Stringer("from", rec.Location).
		Stringer("to", loc).
		Msg("record relocated")

	rec.Location = loc
	rec.UpdatedAt = now
	return rec, nil
}

// Distance computes the great-circle distance between two records.
func (s *RecordService) Distance(ctx context.Context, fromID, toID string, unit domain.Unit) (*ports.DistanceResult, error) {
	from, err := s.repo.FindByID(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("distance from %q: %w", fromID, err)
	}
	to, err := s.repo.FindByID(ctx, toID)
	if err != nil {
		return nil, fmt.Errorf("distance to %q: %w", toID, err)
	}

	return Distance(from.Location, to.Location, unit), nil
}

// Distance computes the distance between two points in every unit.
func Distance(from, to domain.GeoPoint, unit domain.Unit) *ports.DistanceResult {
	rad := from.AngularDistance(to)
	return &ports.DistanceResult{
		From:       from,
		To:         to,
		Radians:    rad,
		Kilometers: rad * domain.EarthRadiusKm,
		Miles:      rad * domain.EarthRadiusMiles,
		Unit:       unit,
		Value:      from.DistanceIn(to, unit),
	}
}

// generateRecordID returns a random identifier in the format rec_<16 hex chars>.
func generateRecordID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("rec_%016x", time.Now().UnixNano())
	}
	return "rec_" + hex.EncodeToString(b)
}
