package handler

import (
	"log/slog"
	"net/http"

	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/response"
	"megacare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClinicianHandler holds dependencies for the clinician monitoring views. The
// caller's UID must resolve to a clinician record; assignment checks happen
// in the usecase.
type ClinicianHandler struct {
	uc     usecase.ClinicianUsecase
	logger *slog.Logger
}

// NewClinicianHandler is the constructor for ClinicianHandler, injected by Fx.
func NewClinicianHandler(uc usecase.ClinicianUsecase, logger *slog.Logger) *ClinicianHandler {
	return &ClinicianHandler{uc: uc, logger: logger}
}

// ListPatients returns the profiles of every patient assigned to the caller.
func (h *ClinicianHandler) ListPatients(c echo.Context) error {
	patients, err := h.uc.ListPatients(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "")
}

// GetPatientReports returns recent reports for one assigned patient.
func (h *ClinicianHandler) GetPatientReports(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	reports, err := h.uc.GetPatientReports(c.Request().Context(), middleware.UID(c), c.Param("patientId"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}
