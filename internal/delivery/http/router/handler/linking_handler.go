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

// LinkingHandler holds dependencies for the account-linking handlers. The
// LINE identity always comes from the verified token, never from the request
// body.
type LinkingHandler struct {
	uc     usecase.LinkingUsecase
	logger *slog.Logger
}

// NewLinkingHandler is the constructor for LinkingHandler, injected by Fx.
func NewLinkingHandler(uc usecase.LinkingUsecase, logger *slog.Logger) *LinkingHandler {
	return &LinkingHandler{uc: uc, logger: logger}
}

type linkAccountRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
}

// GetStatus reports whether the caller's LINE identity is bound to a customer
// profile. An account without a LINE identity is never linked.
func (h *LinkingHandler) GetStatus(c echo.Context) error {
	lineID := middleware.LineID(c)
	if lineID == "" {
		return response.Success(c, http.StatusOK, &usecase.LinkStatus{IsLinked: false}, "")
	}

	status, err := h.uc.GetLinkStatus(c.Request().Context(), lineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// LinkAccount binds the caller's LINE identity to the customer profile that
// owns the submitted device serial number.
func (h *LinkingHandler) LinkAccount(c echo.Context) error {
	lineID := middleware.LineID(c)
	if lineID == "" {
		return domainerrors.ErrUnauthenticated.WithDetails("token carries no LINE identity")
	}

	var req linkAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := h.uc.LinkAccount(c.Request().Context(), lineID, req.SerialNumber); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
