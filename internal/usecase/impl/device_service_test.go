package impl

import (
	"context"
	"testing"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	info := &usecase.DeviceInfo{PushToken: "ExponentPushToken[new]", DeviceID: "iphone-15", Platform: entity.PlatformIOS}

	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
		return d.UserID == userID && d.DeviceID == "iphone-15" && d.PushToken == "ExponentPushToken[new]" && d.IsActive
	})).RunAndReturn(func(_ context.Context, d *entity.UserDevice) error {
		d.ID = deviceID

		return nil
	})

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.CanReceivePush())
}

func TestDeviceService_RegisterDevice_StorageFailure(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{PushToken: "t", DeviceID: "pixel-8"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDeviceService_RegisterDevice_MissingDeviceID(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{PushToken: "t"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := []*entity.UserDevice{{ID: uuid.New(), IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(active, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, active, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name      string
		setup     func(fx deviceServiceFixtures)
		wantError error
	}{
		{
			name: "own device",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				fx.deviceRepo.EXPECT().DeactivateDevice(ctx, deviceID).Return(nil)
			},
		},
		{
			name: "another user's device",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantError: domainerrors.ErrNotAuthorized,
		},
		{
			name: "unknown device",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantError: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.DeactivateDevice(ctx, userID, deviceID)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)

				return
			}
			assert.NoError(t, err)
		})
	}
}
