package handler

import (
	"log/slog"
	"net/http"

	"megacare/internal/delivery/http/response"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the LINE login endpoint. This is the
// only endpoint outside /health that runs without the Firebase auth guard.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type lineLoginRequest struct {
	AuthorizationCode string `json:"authorizationCode" validate:"required"`
	RedirectURI       string `json:"redirectUri" validate:"required,uri"`
}

// LineLogin exchanges a LINE authorization code for either a Firebase custom
// token or a registration-required response carrying the LINE profile.
func (h *AuthHandler) LineLogin(c echo.Context) error {
	var req lineLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	output, err := h.uc.LineLogin(c.Request().Context(), &usecase.LineLoginInput{
		AuthorizationCode: req.AuthorizationCode,
		RedirectURI:       req.RedirectURI,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
