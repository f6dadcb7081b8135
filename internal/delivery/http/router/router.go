// Package router contains route registration for the HTTP delivery.
package router

import (
	"megacare/internal/delivery/http/middleware"
	"megacare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	EquipmentHandler *handler.EquipmentHandler
	ReportHandler    *handler.ReportHandler
	LinkingHandler   *handler.LinkingHandler
	ClinicianHandler *handler.ClinicianHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, outside the versioned API and the auth guard
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// LINE login runs before the caller holds a Firebase token
	api.POST("/auth/line", r.params.AuthHandler.LineLogin)

	// Customer-facing routes, always scoped to the verified caller
	customerGroup := api.Group("/customers/me")
	customerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		customerGroup.POST("", r.params.ProfileHandler.CreateProfile)
		customerGroup.GET("", r.params.ProfileHandler.GetProfile)
		customerGroup.PATCH("", r.params.ProfileHandler.UpdateProfile)

		customerGroup.POST("/devices", r.params.EquipmentHandler.AddDevice)
		customerGroup.GET("/devices", r.params.EquipmentHandler.ListDevices)
		customerGroup.POST("/masks", r.params.EquipmentHandler.AddMask)
		customerGroup.GET("/masks", r.params.EquipmentHandler.ListMasks)
		customerGroup.POST("/airTubing", r.params.EquipmentHandler.AddAirTubing)
		customerGroup.GET("/airTubing", r.params.EquipmentHandler.ListAirTubing)

		customerGroup.POST("/dailyReports", r.params.ReportHandler.SubmitReport)
		customerGroup.GET("/dailyReports", r.params.ReportHandler.ListReports)
		customerGroup.GET("/dailyReports/latest", r.params.ReportHandler.GetLatestReport)
		customerGroup.GET("/dailyReports/:reportDate", r.params.ReportHandler.GetReport)
	}

	// Account-linking routes for LIFF users
	userGroup := api.Group("/users")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/status", r.params.LinkingHandler.GetStatus)
		userGroup.POST("/link-account", r.params.LinkingHandler.LinkAccount)
	}

	// Clinician monitoring views
	clinicianGroup := api.Group("/clinician")
	clinicianGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		clinicianGroup.GET("/patients", r.params.ClinicianHandler.ListPatients)
		clinicianGroup.GET("/patients/:patientId/dailyReports", r.params.ClinicianHandler.GetPatientReports)
	}
}
