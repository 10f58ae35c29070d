package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/core/domain"
	"github.com/99minutos/geopoint/internal/core/ports"
)

// ReportDispatcher is the interface the handler uses to enqueue reports.
type ReportDispatcher interface {
	Enqueue(in ports.ReportInput)
	EnqueueBatch(in []ports.ReportInput)
}

// ReportHandler handles device location report ingestion.
type ReportHandler struct {
	dispatcher ReportDispatcher
}

func NewReportHandler(dispatcher ReportDispatcher) *ReportHandler {
	return &ReportHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/reports, enqueues a single report and returns 202.
//
// @Summary      Ingest a device location report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportRequest  true  "Location report"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Router       /v1/reports [post]
func (h *ReportHandler) Receive(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	in, err := checkReport(c, principal, req)
	if err != nil {
		return err
	}

	h.dispatcher.Enqueue(in)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "report accepted"})
}

// ReceiveBatch handles POST /v1/reports/batch. The batch is rejected as a
// whole if any report is invalid.
//
// @Summary      Ingest a batch of device location reports
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []reportRequest  true  "Array of location reports"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      422   {object}  RangeErrorResponse
// @Router       /v1/reports/batch [post]
func (h *ReportHandler) ReceiveBatch(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var reqs []reportRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.ReportInput, 0, len(reqs))
	for i, req := range reqs {
		in, err := checkReport(c, principal, req)
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				return echo.NewHTTPError(he.Code, fmt.Sprintf("report[%d]: %v", i, he.Message))
			}
			return fmt.Errorf("report[%d]: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "reports accepted",
		Count:   len(inputs),
	})
}

// checkReport validates a report before it is queued so that callers see
// range and ownership errors synchronously.
func checkReport(c echo.Context, principal domain.Principal, req reportRequest) (ports.ReportInput, error) {
	if err := c.Validate(&req); err != nil {
		return ports.ReportInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !principal.CanReportFor(req.DeviceID) {
		return ports.ReportInput{}, domain.ErrForbidden
	}
	if err := domain.Validate(*req.Latitude, *req.Longitude); err != nil {
		return ports.ReportInput{}, err
	}
	return ports.ReportInput{
		DeviceID:  req.DeviceID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: req.Timestamp,
		Source:    req.Source,
	}, nil
}
