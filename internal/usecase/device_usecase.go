package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a handset reports when it registers for pushes.
type DeviceInfo struct {
	PushToken string `json:"push_token"`
	DeviceID  string `json:"device_id"`
	Platform  string `json:"platform"`
}

// DeviceUsecase keeps the push destinations of a user. The most recently
// registered active device receives alert and timer pushes.
type DeviceUsecase interface {
	// RegisterDevice adds a device, or refreshes the token of a known device ID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices returns the active devices of the user.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops pushes to a device owned by the user.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
