package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device matches the lookup.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push destinations of users. A device is identified
// by the pair (user, handset device id).
type DeviceRepository interface {
	// UpsertDevice inserts the device or, for a known (user, device id) pair, refreshes
	// its token and platform and reactivates it. ID and timestamps are written back.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByUser lists active devices, most recently updated first.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindLatestActiveDevice returns the push destination used for alerts and prompts.
	FindLatestActiveDevice(ctx context.Context, userID uuid.UUID) (*entity.UserDevice, error)

	// DeactivateDevice stops pushes to the device. Unknown ids yield ErrDeviceNotFound.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
