package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/api/handler"
	"github.com/99minutos/geopoint/internal/api/middleware"
	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
)

const testSecret = "test-secret"

type fakeRecords struct{}

func (fakeRecords) Create(_ context.Context, in ports.CreateRecordInput) (*domain.Record, error) {
	loc, err := domain.New(in.Location)
	if err != nil {
		return nil, err
	}
	return &domain.Record{ID: "rec_1", Name: in.Name, Location: loc}, nil
}

func (fakeRecords) Get(_ context.Context, id string) (*domain.Record, error) {
	return nil, domain.ErrRecordNotFound
}

func (fakeRecords) Relocate(_ context.Context, id string, _ domain.Input) (*domain.Record, error) {
	return nil, domain.ErrRecordNotFound
}

func (fakeRecords) Distance(_ context.Context, fromID, _ string, _ domain.Unit) (*ports.DistanceResult, error) {
	return nil, errors.New("distance from " + fromID + ": " + domain.ErrRecordNotFound.Error())
}

type fakeReports struct{}

func (fakeReports) Process(context.Context, ports.ReportInput) error { return nil }

func (fakeReports) LastKnown(context.Context, string) (*domain.LocationReport, error) {
	return nil, domain.ErrLocationUnknown
}

type fakeLocation struct{ err error }

func (f fakeLocation) Current(context.Context) (domain.GeoPoint, error) {
	return domain.GeoPoint{}, f.err
}

func (f fakeLocation) CurrentAsync(ctx context.Context) <-chan ports.LocationResult {
	out := make(chan ports.LocationResult, 1)
	p, err := f.Current(ctx)
	out <- ports.LocationResult{Point: p, Err: err}
	close(out)
	return out
}

type fakeDispatcher struct{ n int }

func (d *fakeDispatcher) Enqueue(ports.ReportInput) { d.n++ }
func (d *fakeDispatcher) EnqueueBatch(in []ports.ReportInput) { d.n += len(in) }

func newTestRouter(t *testing.T, d *fakeDispatcher, locErr error) http.Handler {
	t.Helper()
	return NewRouter(Deps{
		Records:    fakeRecords{},
		Reports:    fakeReports{},
		Location:   fakeLocation{err: locErr},
		Dispatcher: d,
		Checks: []handler.DependencyCheck{
			{Name: "mongodb", Ping: func(context.Context) error { return nil }},
		},
		JWTSecret: testSecret,
		Log:       zerolog.Nop(),
		Registry:  prometheus.NewRegistry(),
	})
}

func token(t *testing.T, role, deviceID string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Role:     role,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "tester",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func do(h http.Handler, method, target, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_OpsEndpoints(t *testing.T) {
	h := newTestRouter(t, &fakeDispatcher{}, nil)

	for _, path := range []string{"/health", "/health/ready", "/metrics", "/swagger/doc.json"} {
		if rec := do(h, http.MethodGet, path, "", ""); rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_RangeErrorIs422(t *testing.T) {
	h := newTestRouter(t, &fakeDispatcher{}, nil)

	rec := do(h, http.MethodPost, "/v1/geopoints/validate", `{"latitude": 10, "longitude": 180.5}`, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp handler.RangeErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Field != "longitude" || resp.Value == nil || *resp.Value != 180.5 || resp.Bound == nil || *resp.Bound != 180 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if resp.Error != "longitude > 180.0" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	h := newTestRouter(t, &fakeDispatcher{}, errors.New("no fix"))

	cases := []struct {
		name, method, path, body string
		want                     int
	}{
		{"record not found", http.MethodGet, "/v1/records/missing", "", http.StatusNotFound},
		{"device unknown", http.MethodGet, "/v1/devices/ghost/location", "", http.StatusNotFound},
		{"unknown unit", http.MethodGet, "/v1/records/a/distance/b?unit=furlong", "", http.StatusBadRequest},
		{"unclassified error", http.MethodGet, "/v1/records/a/distance/b", "", http.StatusInternalServerError},
		{"provider failure", http.MethodGet, "/v1/location/current", "", http.StatusBadGateway},
		{"wrong wire type", http.MethodPost, "/v1/geopoints/validate", `{"__type":"Box","latitude":1,"longitude":1}`, http.StatusBadRequest},
		{"no route", http.MethodGet, "/v1/nowhere", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, tc.method, tc.path, tc.body, "")
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
			var resp handler.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error == "" {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestRouter_RecordsRequireAuth(t *testing.T) {
	h := newTestRouter(t, &fakeDispatcher{}, nil)
	body := `{"name":"depot","location":[1,2]}`

	if rec := do(h, http.MethodPost, "/v1/records", body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	rec := do(h, http.MethodPost, "/v1/records", body, token(t, domain.RoleAdmin, ""))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"location":{"__type":"GeoPoint","latitude":1,"longitude":2}`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRouter_Reports(t *testing.T) {
	d := &fakeDispatcher{}
	h := newTestRouter(t, d, nil)
	body := `{"device_id":"dev-1","latitude":1,"longitude":2,"timestamp":"2024-05-01T12:00:00Z","source":"gps"}`

	cases := []struct {
		name string
		auth string
		want int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"viewer role", token(t, "viewer", ""), http.StatusForbidden},
		{"other device", token(t, domain.RoleDevice, "dev-2"), http.StatusForbidden},
		{"own device", token(t, domain.RoleDevice, "dev-1"), http.StatusAccepted},
		{"admin", token(t, domain.RoleAdmin, ""), http.StatusAccepted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := do(h, http.MethodPost, "/v1/reports", body, tc.auth); rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
	if d.n != 2 {
		t.Fatalf("expected 2 enqueued reports, got %d", d.n)
	}
}
