package redis

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationStore_LatestEmpty(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLocationStore(client, newTestConfig())

	location, err := store.Latest(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestLocationStore_AppendKeepsNewestAndTrims(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewLocationStore(client, newTestConfig())
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, store.Append(ctx, userID, &entity.Location{
			Latitude:  float64(i),
			Longitude: float64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	latest, err := store.Latest(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 4.0, latest.Latitude)
	assert.True(t, latest.Timestamp.Equal(base.Add(4*time.Minute)))

	items, err := mr.List(locationKey(userID))
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestLocationStore_HistoryExpiresAfterRetention(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewLocationStore(client, newTestConfig())
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Append(ctx, userID, &entity.Location{Latitude: 1, Longitude: 1}))
	assert.Equal(t, 24*time.Hour, mr.TTL(locationKey(userID)), "configured fallback")

	require.NoError(t, store.SetRetention(ctx, userID, 2*time.Hour))
	assert.Equal(t, 2*time.Hour, mr.TTL(locationKey(userID)), "applied to the existing history")

	mr.FastForward(time.Hour)
	require.NoError(t, store.Append(ctx, userID, &entity.Location{Latitude: 2, Longitude: 2}))
	assert.Equal(t, 2*time.Hour, mr.TTL(locationKey(userID)), "restarted by a new report")

	mr.FastForward(2*time.Hour + time.Second)
	latest, err := store.Latest(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestLocationStore_SetRetentionRejectsNonPositive(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLocationStore(client, newTestConfig())

	assert.Error(t, store.SetRetention(context.Background(), uuid.New(), 0))
}
