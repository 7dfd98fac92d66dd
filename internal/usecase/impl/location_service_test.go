package impl

import (
	"context"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockRepo "guardian/internal/mocks/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service usecase.LocationResolver
	store   *mockRepo.MockLocationStore
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	fx := locationServiceFixtures{store: mockRepo.NewMockLocationStore(t)}
	cfg := &config.Config{Location: &config.LocationConfig{
		MaxAge:            10 * time.Minute,
		MinDistanceMeters: 10,
	}}
	fx.service = NewLocationService(fx.store, cfg, newTestLogger())

	return fx
}

func TestLocationService_CurrentLocation_PrefersSupplied(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplied := &entity.Location{Latitude: 51.5007, Longitude: -0.1246}

	fx.store.EXPECT().Latest(ctx, userID).Return(nil, nil)
	fx.store.EXPECT().Append(ctx, userID, mock.AnythingOfType("*entity.Location")).Return(nil)

	got := fx.service.CurrentLocation(ctx, userID, supplied)
	require.NotNil(t, got)
	assert.Equal(t, 51.5007, got.Latitude)
	assert.False(t, got.Timestamp.IsZero())
	assert.True(t, supplied.Timestamp.IsZero(), "caller's value must not be modified")
}

func TestLocationService_CurrentLocation_SuppliedSurvivesStoreFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplied := &entity.Location{Latitude: 1, Longitude: 1, Timestamp: time.Now().UTC()}

	fx.store.EXPECT().Latest(ctx, userID).Return(nil, errors.New("redis down"))

	got := fx.service.CurrentLocation(ctx, userID, supplied)
	require.NotNil(t, got)
	assert.Equal(t, supplied.Latitude, got.Latitude)
}

func TestLocationService_CurrentLocation_Stored(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		supplied *entity.Location
		latest   *entity.Location
		err      error
		wantNil  bool
	}{
		{
			name:   "recent stored fix",
			latest: &entity.Location{Latitude: 10, Longitude: 20, Timestamp: time.Now().Add(-time.Minute)},
		},
		{
			name:     "invalid supplied falls back to stored",
			supplied: &entity.Location{Latitude: 91, Longitude: 0},
			latest:   &entity.Location{Latitude: 10, Longitude: 20, Timestamp: time.Now().Add(-time.Minute)},
		},
		{
			name:    "stale stored fix",
			latest:  &entity.Location{Latitude: 10, Longitude: 20, Timestamp: time.Now().Add(-time.Hour)},
			wantNil: true,
		},
		{
			name:    "nothing stored",
			wantNil: true,
		},
		{
			name:    "store unreadable",
			err:     errors.New("redis down"),
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			fx.store.EXPECT().Latest(ctx, userID).Return(tt.latest, tt.err)

			got := fx.service.CurrentLocation(ctx, userID, tt.supplied)
			if tt.wantNil {
				assert.Nil(t, got)

				return
			}
			assert.Equal(t, tt.latest, got)
		})
	}
}

func TestLocationService_SaveUserLocation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name       string
		prev       *entity.Location
		next       *entity.Location
		wantAppend bool
	}{
		{
			name:       "first fix",
			next:       &entity.Location{Latitude: 25.0330, Longitude: 121.5654, Timestamp: now},
			wantAppend: true,
		},
		{
			name:       "moved far enough",
			prev:       &entity.Location{Latitude: 25.0330, Longitude: 121.5654, Timestamp: now.Add(-time.Minute)},
			next:       &entity.Location{Latitude: 25.0340, Longitude: 121.5654, Timestamp: now},
			wantAppend: true,
		},
		{
			name: "same spot shortly after",
			prev: &entity.Location{Latitude: 25.0330, Longitude: 121.5654, Timestamp: now.Add(-time.Minute)},
			next: &entity.Location{Latitude: 25.03301, Longitude: 121.5654, Timestamp: now},
		},
		{
			name:       "same spot but previous is getting old",
			prev:       &entity.Location{Latitude: 25.0330, Longitude: 121.5654, Timestamp: now.Add(-6 * time.Minute)},
			next:       &entity.Location{Latitude: 25.0330, Longitude: 121.5654, Timestamp: now},
			wantAppend: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			fx.store.EXPECT().Latest(ctx, userID).Return(tt.prev, nil)
			if tt.wantAppend {
				fx.store.EXPECT().Append(ctx, userID, mock.AnythingOfType("*entity.Location")).Return(nil)
			}

			require.NoError(t, fx.service.SaveUserLocation(ctx, userID, tt.next))
		})
	}
}

func TestLocationService_SaveUserLocation_Invalid(t *testing.T) {
	fx := createTestLocationService(t)

	err := fx.service.SaveUserLocation(context.Background(), uuid.New(), &entity.Location{Latitude: 0, Longitude: 200})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
