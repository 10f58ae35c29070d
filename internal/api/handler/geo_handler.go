package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/service"
	"github.com/99minutos/geopoint/internal/metrics"
)

const maxLocationBody = 4 << 10

// GeoHandler exposes stateless coordinate operations.
type GeoHandler struct{}

func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// Validate handles POST /v1/geopoints/validate.
//
// @Summary      Validate a coordinate
// @Description  Accepts a [latitude, longitude] array or a {"latitude","longitude"} object and returns its wire form.
// @Tags         geopoints
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Location"
// @Success      200   {object}  domain.Wire
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Router       /v1/geopoints/validate [post]
func (h *GeoHandler) Validate(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxLocationBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in, err := decodeLocation(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := domain.New(in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Distance handles POST /v1/geopoints/distance.
//
// @Summary      Great-circle distance between two coordinates
// @Tags         geopoints
// @Accept       json
// @Produce      json
// @Param        body  body      distanceRequest  true  "Endpoints and unit (km, mi or rad)"
// @Success      200   {object}  distanceResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Router       /v1/geopoints/distance [post]
func (h *GeoHandler) Distance(c echo.Context) error {
	var req distanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	unit, err := domain.ParseUnit(req.Unit)
	if err != nil {
		return err
	}
	from, err := req.From.point()
	if err != nil {
		return err
	}
	to, err := req.To.point()
	if err != nil {
		return err
	}

	metrics.DistanceQueriesTotal.WithLabelValues(string(unit)).Inc()
	return c.JSON(http.StatusOK, toDistanceResponse(service.Distance(from, to, unit)))
}
