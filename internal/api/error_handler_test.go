package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/core/domain"
)

func TestHTTPErrorHandler_NaNRangeErrorOmitsValueAndBound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/nan", func(echo.Context) error {
		return domain.Validate(10, math.NaN())
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nan", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["field"] != "longitude" || body["error"] != "longitude is NaN" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if _, ok := body["value"]; ok {
		t.Errorf("value should be omitted: %s", rec.Body.String())
	}
	if _, ok := body["bound"]; ok {
		t.Errorf("bound should be omitted: %s", rec.Body.String())
	}
}
