package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
	"github.com/99minutos/geopoint/internal/metrics"
)

// RecordHandler handles HTTP requests for location-tagged records.
type RecordHandler struct {
	service  ports.RecordService
	location ports.LocationService
}

// NewRecordHandler builds a RecordHandler. location may be nil, in which case
// use_current_location is rejected.
func NewRecordHandler(service ports.RecordService, location ports.LocationService) *RecordHandler {
	return &RecordHandler{service: service, location: location}
}

// Create handles POST /v1/records.
//
// @Summary      Create a record
// @Description  location may be [lat, lng], {"latitude","longitude"} or omitted (defaults to 0, 0).
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecordRequest  true  "Record"
// @Success      201   {object}  domain.Record
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Router       /v1/records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := decodeLocation(req.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.UseCurrentLocation {
		if in != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "location and use_current_location are mutually exclusive")
		}
		if h.location == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "current location is not available")
		}
		p, err := h.location.Current(c.Request().Context())
		if err != nil {
			return providerError(err)
		}
		in = p.Position()
	}

	rec, err := h.service.Create(c.Request().Context(), ports.CreateRecordInput{
		Name:     req.Name,
		Tags:     req.Tags,
		Location: in,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

// Get handles GET /v1/records/:id.
//
// @Summary      Get a record
// @Tags         records
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  domain.Record
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/records/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// Relocate handles PUT /v1/records/:id/location.
//
// @Summary      Move a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Record ID"
// @Param        body  body      relocateRequest  true  "New location"
// @Success      200   {object}  domain.Record
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Router       /v1/records/{id}/location [put]
func (h *RecordHandler) Relocate(c echo.Context) error {
	var req relocateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := decodeLocation(req.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.service.Relocate(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// Distance handles GET /v1/records/:id/distance/:other.
//
// @Summary      Distance between two records
// @Tags         records
// @Produce      json
// @Param        id     path      string  true   "Origin record ID"
// @Param        other  path      string  true   "Destination record ID"
// @Param        unit   query     string  false  "km (default), mi or rad"
// @Success      200    {object}  distanceResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /v1/records/{id}/distance/{other} [get]
func (h *RecordHandler) Distance(c echo.Context) error {
	unit, err := domain.ParseUnit(c.QueryParam("unit"))
	if err != nil {
		return err
	}

	res, err := h.service.Distance(c.Request().Context(), c.Param("id"), c.Param("other"), unit)
	if err != nil {
		return err
	}

	metrics.DistanceQueriesTotal.WithLabelValues(string(unit)).Inc()
	return c.JSON(http.StatusOK, toDistanceResponse(res))
}
