package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/response"
	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the daily-report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

type submitReportRequest struct {
	ReportDate              string               `json:"reportDate" validate:"required,datetime=2006-01-02"`
	UsageHours              float64              `json:"usageHours" validate:"min=0"`
	CheyneStokesRespiration string               `json:"cheyneStokesRespiration"`
	RERA                    float64              `json:"rera"`
	Leak                    entity.LeakStats     `json:"leak"`
	Pressure                entity.PressureStats `json:"pressure"`
	EventsPerHour           entity.EventsPerHour `json:"eventsPerHour"`
	DeviceSnapshot          map[string]any       `json:"deviceSnapshot"`
}

// SubmitReport stores one day's therapy metrics for the authenticated caller.
// Resubmitting the same date replaces the stored report.
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	report, err := h.uc.SubmitReport(c.Request().Context(), middleware.UID(c), &usecase.SubmitReportInput{
		ReportDate:              req.ReportDate,
		UsageHours:              req.UsageHours,
		CheyneStokesRespiration: req.CheyneStokesRespiration,
		RERA:                    req.RERA,
		Leak:                    req.Leak,
		Pressure:                req.Pressure,
		EventsPerHour:           req.EventsPerHour,
		DeviceSnapshot:          req.DeviceSnapshot,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Report saved successfully")
}

// ListReports returns the caller's raw reports, newest first. The optional
// limit query parameter is clamped by the usecase.
func (h *ReportHandler) ListReports(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	reports, err := h.uc.ListReports(c.Request().Context(), middleware.UID(c), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// GetLatestReport returns the caller's newest report with its analysis.
func (h *ReportHandler) GetLatestReport(c echo.Context) error {
	detail, err := h.uc.GetLatestReportDetail(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// GetReport returns the caller's report for one date with its analysis.
func (h *ReportHandler) GetReport(c echo.Context) error {
	detail, err := h.uc.GetReportDetail(c.Request().Context(), middleware.UID(c), c.Param("reportDate"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// parseLimit reads the limit query parameter. Absence means 0, which the
// usecase replaces with the configured default.
func parseLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must be an integer")
	}

	return limit, nil
}
