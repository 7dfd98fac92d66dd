package handler

import (
	"log/slog"
	"net/http"
	"time"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the caller's push destinations.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	PushToken string `json:"push_token" validate:"required"`
	DeviceID  string `json:"device_id" validate:"required,max=255"`
	Platform  string `json:"platform" validate:"required,oneof=ios android"`
}

// DeviceResponse never echoes the push token back to the client.
type DeviceResponse struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDeviceResponse(device *entity.UserDevice) DeviceResponse {
	return DeviceResponse{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		UpdatedAt: device.UpdatedAt,
	}
}

// RegisterDevice makes the handset the caller's newest push destination. Registering
// a known device id again refreshes its token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	ctx := c.Request().Context()
	device, err := h.deviceUC.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		PushToken: req.PushToken,
		DeviceID:  req.DeviceID,
		Platform:  req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.InfoContext(ctx, "Device registered",
		slog.String("user_id", userID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("platform", device.Platform),
	)

	return response.Success(c, http.StatusCreated, newDeviceResponse(device))
}

func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		out = append(out, newDeviceResponse(device))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
