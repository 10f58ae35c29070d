package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubRecordService struct {
	createFn   func(ctx context.Context, in ports.CreateRecordInput) (*domain.Record, error)
	getFn      func(ctx context.Context, id string) (*domain.Record, error)
	relocateFn func(ctx context.Context, id string, loc domain.Input) (*domain.Record, error)
	distanceFn func(ctx context.Context, fromID, toID string, unit domain.Unit) (*ports.DistanceResult, error)
}

func (s *stubRecordService) Create(ctx context.Context, in ports.CreateRecordInput) (*domain.Record, error) {
	return s.createFn(ctx, in)
}

func (s *stubRecordService) Get(ctx context.Context, id string) (*domain.Record, error) {
	return s.getFn(ctx, id)
}

func (s *stubRecordService) Relocate(ctx context.Context, id string, loc domain.Input) (*domain.Record, error) {
	return s.relocateFn(ctx, id, loc)
}

func (s *stubRecordService) Distance(ctx context.Context, fromID, toID string, unit domain.Unit) (*ports.DistanceResult, error) {
	return s.distanceFn(ctx, fromID, toID, unit)
}

type stubLocationService struct {
	point domain.GeoPoint
	err   error
	block bool
}

func (s *stubLocationService) Current(ctx context.Context) (domain.GeoPoint, error) {
	if s.block {
		<-ctx.Done()
		return domain.GeoPoint{}, ctx.Err()
	}
	return s.point, s.err
}

func (s *stubLocationService) CurrentAsync(ctx context.Context) <-chan ports.LocationResult {
	out := make(chan ports.LocationResult, 1)
	if s.block {
		// never resolves; the caller's context decides
		return out
	}
	out <- ports.LocationResult{Point: s.point, Err: s.err}
	close(out)
	return out
}

type stubReportService struct {
	last map[string]*domain.LocationReport
}

func (s *stubReportService) Process(context.Context, ports.ReportInput) error { return nil }

func (s *stubReportService) LastKnown(_ context.Context, deviceID string) (*domain.LocationReport, error) {
	if r, ok := s.last[deviceID]; ok {
		return r, nil
	}
	return nil, domain.ErrLocationUnknown
}

type stubDispatcher struct {
	mu       sync.Mutex
	enqueued []ports.ReportInput
}

func (d *stubDispatcher) Enqueue(in ports.ReportInput) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqueued = append(d.enqueued, in)
}

func (d *stubDispatcher) EnqueueBatch(in []ports.ReportInput) {
	for _, r := range in {
		d.Enqueue(r)
	}
}

func mustPoint(lat, lng float64) domain.GeoPoint {
	p, err := domain.NewGeoPoint(lat, lng)
	if err != nil {
		panic(err)
	}
	return p
}
