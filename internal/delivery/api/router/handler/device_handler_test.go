package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockUsecase "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("register", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{PushToken: "ExponentPushToken[x]", DeviceID: "pixel-8", Platform: "android"}).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, PushToken: "ExponentPushToken[x]", DeviceID: "pixel-8", Platform: "android", IsActive: true}, nil)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger})

		c, rec := newTestContext(http.MethodPost, "/api/v1/me/devices",
			`{"push_token":"ExponentPushToken[x]","device_id":"pixel-8","platform":"android"}`, userID)
		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var device map[string]any
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &device))
		assert.Equal(t, deviceID.String(), device["id"])
		assert.Equal(t, "pixel-8", device["device_id"])
		assert.NotContains(t, device, "push_token")
	})

	t.Run("list active devices", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().GetUserDevices(mock.Anything, userID).
			Return([]*entity.UserDevice{{ID: deviceID, DeviceID: "pixel-8", Platform: "android", IsActive: true}}, nil)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger})

		c, rec := newTestContext(http.MethodGet, "/api/v1/me/devices", "", userID)
		require.NoError(t, h.GetUserDevices(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var devices []DeviceResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &devices))
		require.Len(t, devices, 1)
		assert.Equal(t, deviceID, devices[0].ID)
	})

	t.Run("unknown platform", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger})

		c, rec := newTestContext(http.MethodPost, "/api/v1/me/devices",
			`{"push_token":"t","device_id":"d","platform":"symbian"}`, userID)
		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deactivate unknown device", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrDeviceNotFound)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger})

		c, rec := newTestContext(http.MethodDelete, "/", "", userID)
		require.NoError(t, h.DeactivateDevice(withParam(c, deviceID.String())))
		assert.Equal(t, domainerrors.ErrDeviceNotFound.HTTPCode(), rec.Code)
	})
}
