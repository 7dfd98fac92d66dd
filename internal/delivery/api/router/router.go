// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
	"guardian/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	DeviceHandler  *handler.DeviceHandler
	ContactHandler *handler.ContactHandler
	AlertHandler   *handler.AlertHandler
	TimerHandler   *handler.TimerHandler
	SMSLogHandler  *handler.SMSLogHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	deviceHandler  *handler.DeviceHandler
	contactHandler *handler.ContactHandler
	alertHandler   *handler.AlertHandler
	timerHandler   *handler.TimerHandler
	smsLogHandler  *handler.SMSLogHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		deviceHandler:  params.DeviceHandler,
		contactHandler: params.ContactHandler,
		alertHandler:   params.AlertHandler,
		timerHandler:   params.TimerHandler,
		smsLogHandler:  params.SMSLogHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("/profile", r.profileHandler.GetProfile)
		meGroup.PUT("/profile", r.profileHandler.UpsertProfile)
		meGroup.GET("/settings", r.profileHandler.GetSettings)
		meGroup.PATCH("/settings", r.profileHandler.UpdateSettings)
		meGroup.POST("/settings/sos-pin/verify", r.profileHandler.VerifySOSPin)
		meGroup.POST("/location", r.profileHandler.ReportLocation)

		meGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		meGroup.GET("/devices", r.deviceHandler.GetUserDevices)
		meGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}

	contactsGroup := apiV1.Group("/contacts")
	{
		contactsGroup.GET("", r.contactHandler.ListContacts)
		contactsGroup.POST("", r.contactHandler.AddContact)
		contactsGroup.PATCH("/:id", r.contactHandler.UpdateContact)
		contactsGroup.DELETE("/:id", r.contactHandler.DeleteContact)
	}

	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.POST("/sos", r.alertHandler.TriggerSOS)
		alertsGroup.GET("", r.alertHandler.ListAlerts)
		alertsGroup.GET("/active", r.alertHandler.StreamActiveAlerts)
		alertsGroup.GET("/:id", r.alertHandler.GetAlert)
		alertsGroup.POST("/:id/resolve", r.alertHandler.ResolveAlert)
	}

	timersGroup := apiV1.Group("/timers")
	{
		timersGroup.POST("", r.timerHandler.StartTimer)
		timersGroup.POST("/:id/cancel", r.timerHandler.CancelTimer)
		timersGroup.POST("/:id/complete", r.timerHandler.CompleteTimer)
		timersGroup.POST("/:id/checkins", r.timerHandler.CheckIn)
	}

	apiV1.GET("/sms-logs", r.smsLogHandler.ListSMSLogs)
}
