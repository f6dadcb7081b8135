package handler

import (
	"log/slog"
	"net/http"

	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/response"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EquipmentHandler holds dependencies for the per-customer equipment-history
// handlers.
type EquipmentHandler struct {
	uc     usecase.EquipmentUsecase
	logger *slog.Logger
}

// NewEquipmentHandler is the constructor for EquipmentHandler, injected by Fx.
func NewEquipmentHandler(uc usecase.EquipmentUsecase, logger *slog.Logger) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, logger: logger}
}

type addDeviceRequest struct {
	DeviceName   string         `json:"deviceName" validate:"required"`
	SerialNumber string         `json:"serialNumber" validate:"required"`
	Status       string         `json:"status" validate:"omitempty,oneof=Active Retired"`
	Settings     map[string]any `json:"settings"`
}

type addMaskRequest struct {
	MaskName string `json:"maskName" validate:"required"`
	Size     string `json:"size"`
}

type addAirTubingRequest struct {
	TubingName string `json:"tubingName" validate:"required"`
}

// AddDevice registers a device for the authenticated caller.
func (h *EquipmentHandler) AddDevice(c echo.Context) error {
	var req addDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	device, err := h.uc.AddDevice(c.Request().Context(), middleware.UID(c), &usecase.AddDeviceInput{
		DeviceName:   req.DeviceName,
		SerialNumber: req.SerialNumber,
		Status:       req.Status,
		Settings:     req.Settings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device added successfully")
}

// ListDevices returns the caller's device history, oldest first.
func (h *EquipmentHandler) ListDevices(c echo.Context) error {
	devices, err := h.uc.ListDevices(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// AddMask registers a mask for the authenticated caller.
func (h *EquipmentHandler) AddMask(c echo.Context) error {
	var req addMaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mask input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	mask, err := h.uc.AddMask(c.Request().Context(), middleware.UID(c), &usecase.AddMaskInput{
		MaskName: req.MaskName,
		Size:     req.Size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, mask, "Mask added successfully")
}

// ListMasks returns the caller's mask history, oldest first.
func (h *EquipmentHandler) ListMasks(c echo.Context) error {
	masks, err := h.uc.ListMasks(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, masks, "")
}

// AddAirTubing registers an air-tubing item for the authenticated caller.
func (h *EquipmentHandler) AddAirTubing(c echo.Context) error {
	var req addAirTubingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid air tubing input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	tubing, err := h.uc.AddAirTubing(c.Request().Context(), middleware.UID(c), &usecase.AddAirTubingInput{
		TubingName: req.TubingName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tubing, "Air tubing added successfully")
}

// ListAirTubing returns the caller's air-tubing history, oldest first.
func (h *EquipmentHandler) ListAirTubing(c echo.Context) error {
	tubing, err := h.uc.ListAirTubing(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tubing, "")
}
