package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC  usecase.ProfileUsecase
	LocationUC usecase.LocationResolver
	Logger     *slog.Logger
}

// ProfileHandler serves the caller's own profile and location.
type ProfileHandler struct {
	profileUC  usecase.ProfileUsecase
	locationUC usecase.LocationResolver
	logger     *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:  params.ProfileUC,
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// UpsertProfileRequest represents the request body for saving a profile
type UpsertProfileRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,phone,max=32"`
}

// ProfileResponse is the public view of a user
type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// GetProfile returns the caller's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{ID: user.ID.String(), Name: user.Name, Phone: user.Phone})
}

// UpsertProfile creates or replaces the caller's profile
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	user, err := h.profileUC.UpsertProfile(c.Request().Context(), userID, &usecase.UpsertProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{ID: user.ID.String(), Name: user.Name, Phone: user.Phone})
}

// ReportLocation records the caller's current location
func (h *ProfileHandler) ReportLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	if err := h.locationUC.SaveUserLocation(c.Request().Context(), userID, req.toEntity()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UpdateSettingsRequest is a partial settings update. Absent fields are kept; an
// empty sos_pin removes the PIN.
type UpdateSettingsRequest struct {
	ShakeToSOS              *bool   `json:"shake_to_sos"`
	SOSPin                  *string `json:"sos_pin"`
	AutoDeleteLocationAfter *int    `json:"auto_delete_location_after"` // Hours.
	NotificationSound       *bool   `json:"notification_sound"`
	Vibration               *bool   `json:"vibration"`
}

func (r *UpdateSettingsRequest) toPatch() *entity.SettingsPatch {
	return &entity.SettingsPatch{
		ShakeToSOS:                   r.ShakeToSOS,
		SOSPin:                       r.SOSPin,
		AutoDeleteLocationAfterHours: r.AutoDeleteLocationAfter,
		NotificationSound:            r.NotificationSound,
		Vibration:                    r.Vibration,
	}
}

// SettingsResponse never carries the PIN, only whether one is set.
type SettingsResponse struct {
	ShakeToSOS              bool `json:"shake_to_sos"`
	SOSPinSet               bool `json:"sos_pin_set"`
	AutoDeleteLocationAfter int  `json:"auto_delete_location_after"`
	NotificationSound       bool `json:"notification_sound"`
	Vibration               bool `json:"vibration"`
}

func newSettingsResponse(s *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		ShakeToSOS:              s.ShakeToSOS,
		SOSPinSet:               s.HasSOSPin(),
		AutoDeleteLocationAfter: s.AutoDeleteLocationAfterHours,
		NotificationSound:       s.NotificationSound,
		Vibration:               s.Vibration,
	}
}

// VerifySOSPinRequest carries the PIN typed on the device.
type VerifySOSPinRequest struct {
	Pin string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// GetSettings returns the caller's app settings
func (h *ProfileHandler) GetSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	settings, err := h.profileUC.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings))
}

// UpdateSettings applies a partial update to the caller's settings
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}

	settings, err := h.profileUC.UpdateSettings(c.Request().Context(), userID, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings))
}

// VerifySOSPin answers 204 when the PIN matches
func (h *ProfileHandler) VerifySOSPin(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req VerifySOSPinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid PIN input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	if err := h.profileUC.VerifySOSPin(c.Request().Context(), userID, req.Pin); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
