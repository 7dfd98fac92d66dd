package handler

import (
	"context"
	"net/http"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TimerHandlerParams holds dependencies for TimerHandler, injected by Fx.
type TimerHandlerParams struct {
	fx.In

	Engine usecase.SafetyTimerEngine
}

// TimerHandler exposes safety timers.
type TimerHandler struct {
	engine usecase.SafetyTimerEngine
}

// NewTimerHandler is the constructor for TimerHandler
func NewTimerHandler(params TimerHandlerParams) *TimerHandler {
	return &TimerHandler{engine: params.Engine}
}

// StartTimerRequest represents the request body for starting a timer
type StartTimerRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"required,gte=1"`
}

// CheckInRequest represents the request body for a check-in
type CheckInRequest struct {
	Location *LocationRequest `json:"location,omitempty"`
}

// StartTimer starts a safety timer for the caller
func (h *TimerHandler) StartTimer(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req StartTimerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid timer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	timer, err := h.engine.StartTimer(c.Request().Context(), userID, req.DurationMinutes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, timer)
}

// CancelTimer stops a running timer as cancelled
func (h *TimerHandler) CancelTimer(c echo.Context) error {
	return h.stop(c, h.engine.CancelTimer)
}

// CompleteTimer stops a running timer as completed
func (h *TimerHandler) CompleteTimer(c echo.Context) error {
	return h.stop(c, h.engine.CompleteTimer)
}

func (h *TimerHandler) stop(c echo.Context, stopFn func(ctx context.Context, userID, timerID uuid.UUID) error) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	if err := stopFn(c.Request().Context(), userID, timerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// CheckIn records that the caller is fine
func (h *TimerHandler) CheckIn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	timerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid timer ID")
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	if err := h.engine.RecordCheckIn(c.Request().Context(), userID, timerID, req.Location.toEntity()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
