package handler

import (
	"log/slog"
	"net/http"
	"time"

	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/response"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for calendar-date fields.
const dateLayout = "2006-01-02"

// ProfileHandler holds dependencies for customer-profile handlers. All
// operations act on the authenticated caller's own profile.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type createProfileRequest struct {
	LineID          string `json:"lineId"`
	DisplayName     string `json:"displayName" validate:"required"`
	Title           string `json:"title"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	DateOfBirth     string `json:"dob" validate:"required,datetime=2006-01-02"`
	Location        string `json:"location"`
	Status          string `json:"status"`
	AirViewNumber   string `json:"airViewNumber"`
	MonitoringType  string `json:"monitoringType"`
	AvailableData   string `json:"availableData"`
	DealerPatientID string `json:"dealerPatientId"`
}

type updateProfileRequest struct {
	DisplayName     *string `json:"displayName"`
	Title           *string `json:"title"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	DateOfBirth     *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Location        *string `json:"location"`
	Status          *string `json:"status"`
	AirViewNumber   *string `json:"airViewNumber"`
	MonitoringType  *string `json:"monitoringType"`
	AvailableData   *string `json:"availableData"`
	DealerPatientID *string `json:"dealerPatientId"`
}

// CreateProfile handles profile creation for the authenticated caller.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("dob must be formatted as YYYY-MM-DD")
	}

	input := &usecase.CreateProfileInput{
		LineID:          req.LineID,
		DisplayName:     req.DisplayName,
		Title:           req.Title,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DateOfBirth:     dob,
		Location:        req.Location,
		Status:          req.Status,
		AirViewNumber:   req.AirViewNumber,
		MonitoringType:  req.MonitoringType,
		AvailableData:   req.AvailableData,
		DealerPatientID: req.DealerPatientID,
	}

	customer, err := h.uc.CreateProfile(c.Request().Context(), middleware.UID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Profile created successfully")
}

// GetProfile returns the authenticated caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	customer, err := h.uc.GetProfile(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// UpdateProfile merges the supplied fields into the caller's profile and
// returns the updated document.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	input := &usecase.UpdateProfileInput{
		DisplayName:     req.DisplayName,
		Title:           req.Title,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Location:        req.Location,
		Status:          req.Status,
		AirViewNumber:   req.AirViewNumber,
		MonitoringType:  req.MonitoringType,
		AvailableData:   req.AvailableData,
		DealerPatientID: req.DealerPatientID,
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("dob must be formatted as YYYY-MM-DD")
		}
		input.DateOfBirth = &dob
	}

	customer, err := h.uc.UpdateProfile(c.Request().Context(), middleware.UID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Profile updated successfully")
}
