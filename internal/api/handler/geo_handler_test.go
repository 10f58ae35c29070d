package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
)

func TestGeoHandler_Validate_ReturnsWireForm(t *testing.T) {
	e := newTestEcho()
	h := NewGeoHandler()

	for _, body := range []string{`[30, -20]`, `{"latitude": 30, "longitude": -20}`} {
		c, rec := newJSONContext(e, http.MethodPost, "/v1/geopoints/validate", strings.NewReader(body))
		if err := h.Validate(c); err != nil {
			t.Fatalf("%s: handler error: %v", body, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", body, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != `{"__type":"GeoPoint","latitude":30,"longitude":-20}` {
			t.Fatalf("%s: unexpected body %s", body, got)
		}
	}
}

func TestGeoHandler_Validate_OutOfRange(t *testing.T) {
	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/v1/geopoints/validate", strings.NewReader(`[91, 0]`))

	err := NewGeoHandler().Validate(c)
	var re *domain.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if re.Field != "latitude" || re.Value != 91 || re.Bound != 90 {
		t.Fatalf("unexpected range error: %+v", re)
	}
}

func TestGeoHandler_Validate_BadPayload(t *testing.T) {
	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/v1/geopoints/validate", strings.NewReader(`["x"]`))

	err := NewGeoHandler().Validate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGeoHandler_Distance(t *testing.T) {
	e := newTestEcho()
	body := `{"from":{"latitude":0,"longitude":0},"to":{"latitude":0,"longitude":90},"unit":"mi"}`
	c, rec := newJSONContext(e, http.MethodPost, "/v1/geopoints/distance", strings.NewReader(body))

	if err := NewGeoHandler().Distance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Radians    float64 `json:"radians"`
		Kilometers float64 `json:"kilometers"`
		Miles      float64 `json:"miles"`
		Unit       string  `json:"unit"`
		Value      float64 `json:"value"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if math.Abs(resp.Radians-math.Pi/2) > 1e-9 {
		t.Errorf("radians = %v", resp.Radians)
	}
	if math.Abs(resp.Kilometers-10007.543) > 0.01 {
		t.Errorf("kilometers = %v", resp.Kilometers)
	}
	if resp.Unit != "mi" || resp.Value != resp.Miles {
		t.Errorf("unit/value = %q/%v, miles = %v", resp.Unit, resp.Value, resp.Miles)
	}
}

func TestGeoHandler_Distance_Errors(t *testing.T) {
	e := newTestEcho()
	h := NewGeoHandler()

	c, _ := newJSONContext(e, http.MethodPost, "/", strings.NewReader(`{"from":{"latitude":0},"to":{"latitude":0,"longitude":0}}`))
	var he *echo.HTTPError
	if err := h.Distance(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("missing longitude: expected 400, got %v", err)
	}

	c, _ = newJSONContext(e, http.MethodPost, "/", strings.NewReader(`{"from":{"latitude":0,"longitude":181},"to":{"latitude":0,"longitude":0}}`))
	if err := h.Distance(c); !errors.Is(err, domain.ErrOutOfRange) {
		t.Fatalf("out of range: expected ErrOutOfRange, got %v", err)
	}

	c, _ = newJSONContext(e, http.MethodPost, "/", strings.NewReader(`{"from":{"latitude":0,"longitude":0},"to":{"latitude":0,"longitude":0},"unit":"ly"}`))
	if err := h.Distance(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("bad unit: expected 400, got %v", err)
	}
}
