package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/geopoint/internal/api/handler"
	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/metrics"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders coordinate range errors with the offending field, value and bound.
//   - Logs unexpected and upstream errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var re *domain.RangeError
		if errors.As(err, &re) {
			metrics.RangeErrorsTotal.WithLabelValues(re.Field).Inc()
			_ = c.JSON(http.StatusUnprocessableEntity, toRangeErrorResponse(re))
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.ErrorResponse{Error: msg})
	}
}

func toRangeErrorResponse(re *domain.RangeError) handler.RangeErrorResponse {
	resp := handler.RangeErrorResponse{
		Error: re.Error(),
		Field: re.Field,
	}
	// NaN is not compared against a bound, so neither is reported.
	if !math.IsNaN(re.Value) {
		v, b := re.Value, re.Bound
		resp.Value = &v
		resp.Bound = &b
	}
	return resp
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, upstream failures set by handlers).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil && he.Code >= http.StatusInternalServerError {
			log.Warn().
				Err(he.Internal).
				Int("status", he.Code).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("upstream failure")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, domain.ErrLocationUnknown):
		return http.StatusNotFound, "no known location for device"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrWireType):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
