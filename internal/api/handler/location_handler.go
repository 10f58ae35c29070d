package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/metrics"
)

const defaultLookupTimeout = 10 * time.Second

// LocationHandler serves the host's current position and device last-known positions.
type LocationHandler struct {
	location ports.LocationService
	reports  ports.ReportService
	timeout  time.Duration
}

func NewLocationHandler(location ports.LocationService, reports ports.ReportService) *LocationHandler {
	return &LocationHandler{location: location, reports: reports, timeout: defaultLookupTimeout}
}

// Current handles GET /v1/location/current.
//
// @Summary      Current host position
// @Tags         location
// @Produce      json
// @Success      200  {object}  domain.Wire
// @Failure      422  {object}  RangeErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      504  {object}  ErrorResponse
// @Router       /v1/location/current [get]
func (h *LocationHandler) Current(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	select {
	case res := <-h.location.CurrentAsync(ctx):
		if res.Err != nil {
			if errors.Is(res.Err, context.DeadlineExceeded) {
				metrics.LocationLookupsTotal.WithLabelValues("timeout").Inc()
			} else {
				metrics.LocationLookupsTotal.WithLabelValues("error").Inc()
			}
			return providerError(res.Err)
		}
		metrics.LocationLookupsTotal.WithLabelValues("ok").Inc()
		return c.JSON(http.StatusOK, res.Point)
	case <-ctx.Done():
		metrics.LocationLookupsTotal.WithLabelValues("timeout").Inc()
		return echo.NewHTTPError(http.StatusGatewayTimeout, "location lookup timed out").SetInternal(ctx.Err())
	}
}

// DeviceLocation handles GET /v1/devices/:id/location.
//
// @Summary      Last known device position
// @Tags         location
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  domain.LocationReport
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/devices/{id}/location [get]
func (h *LocationHandler) DeviceLocation(c echo.Context) error {
	report, err := h.reports.LastKnown(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// providerError keeps coordinate errors for the 422 mapping, reports an
// expired lookup deadline as 504 and turns anything else into a 502.
func providerError(err error) error {
	if errors.Is(err, domain.ErrOutOfRange) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return echo.NewHTTPError(http.StatusGatewayTimeout, "location lookup timed out").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusBadGateway, "location provider unavailable").SetInternal(err)
}
