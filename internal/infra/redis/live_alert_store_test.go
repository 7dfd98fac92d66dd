package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveAlert(userID uuid.UUID) *entity.LiveAlert {
	return &entity.LiveAlert{
		AlertID: uuid.New(),
		UserID:  userID,
		Location: entity.Location{
			Latitude:  1,
			Longitude: 2,
			Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		Status:    entity.AlertStatusActive,
	}
}

func TestLiveAlertStore_PutAndListActive(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()
	userID := uuid.New()

	alert := newLiveAlert(userID)
	require.NoError(t, store.Put(ctx, alert))

	alerts, err := store.ListActive(ctx, userID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, alert.AlertID, alerts[0].AlertID)
	assert.Equal(t, alert.Location.Latitude, alerts[0].Location.Latitude)
	assert.True(t, alert.Timestamp.Equal(alerts[0].Timestamp))

	other, err := store.ListActive(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestLiveAlertStore_ResolvedAlertLeavesIndexAndExpires(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()
	userID := uuid.New()

	alert := newLiveAlert(userID)
	require.NoError(t, store.Put(ctx, alert))

	resolvedAt := time.Date(2026, 1, 2, 4, 0, 0, 0, time.UTC)
	alert.Status = entity.AlertStatusResolved
	alert.ResolvedAt = &resolvedAt
	require.NoError(t, store.Put(ctx, alert))

	alerts, err := store.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	key := alertKey(alert.AlertID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))
	assert.Equal(t, "resolved", mr.HGet(key, "status"))

	mr.FastForward(2 * time.Hour)
	assert.False(t, mr.Exists(key))
}

func TestLiveAlertStore_StaleActiveWriteKeepsResolved(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()
	userID := uuid.New()

	// A subscriber rebuild read the alert while it was active...
	stale := newLiveAlert(userID)
	require.NoError(t, store.Put(ctx, stale))

	// ...a resolve landed before the rebuild wrote it back.
	resolvedAt := time.Date(2026, 1, 2, 4, 0, 0, 0, time.UTC)
	resolved := *stale
	resolved.Status = entity.AlertStatusResolved
	resolved.ResolvedAt = &resolvedAt
	require.NoError(t, store.Put(ctx, &resolved))

	received := make(chan *entity.LiveAlert, 1)
	unsubscribe, err := store.Subscribe(ctx, userID, func(alert *entity.LiveAlert) {
		received <- alert
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, store.Put(ctx, stale))

	key := alertKey(stale.AlertID)
	assert.Equal(t, "resolved", mr.HGet(key, "status"))
	assert.Equal(t, time.Hour, mr.TTL(key))

	alerts, err := store.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	select {
	case got := <-received:
		t.Fatalf("stale write was announced: %s", got.Status)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLiveAlertStore_FalseAlarmAfterActive(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()

	alert := newLiveAlert(uuid.New())
	require.NoError(t, store.Put(ctx, alert))

	alert.Status = entity.AlertStatusFalseAlarm
	require.NoError(t, store.Put(ctx, alert))

	assert.Equal(t, "false_alarm", mr.HGet(alertKey(alert.AlertID), "status"))
	assert.False(t, client.SIsMember(ctx, userIndexKey(alert.UserID), alert.AlertID.String()).Val())
}

func TestLiveAlertStore_SubscribeReceivesOverwrites(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()
	userID := uuid.New()

	received := make(chan *entity.LiveAlert, 4)
	unsubscribe, err := store.Subscribe(ctx, userID, func(alert *entity.LiveAlert) {
		received <- alert
	})
	require.NoError(t, err)
	defer unsubscribe()

	alert := newLiveAlert(userID)
	require.NoError(t, store.Put(ctx, alert))
	require.NoError(t, store.Put(ctx, newLiveAlert(uuid.New())))

	select {
	case got := <-received:
		assert.Equal(t, alert.AlertID, got.AlertID)
		assert.Equal(t, entity.AlertStatusActive, got.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a live alert event")
	}

	select {
	case got := <-received:
		t.Fatalf("unexpected event for another user: %v", got.AlertID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLiveAlertStore_UnsubscribeIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx := context.Background()

	unsubscribe, err := store.Subscribe(ctx, uuid.New(), func(*entity.LiveAlert) {})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe()
		}()
	}
	wg.Wait()

	assert.NotPanics(t, unsubscribe)
}

func TestLiveAlertStore_SubscribeStopsWithContext(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewLiveAlertStore(client, newTestConfig(), newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	userID := uuid.New()

	var mu sync.Mutex
	count := 0
	unsubscribe, err := store.Subscribe(ctx, userID, func(*entity.LiveAlert) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	require.NoError(t, err)
	defer unsubscribe()

	cancel()
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, store.Put(context.Background(), newLiveAlert(userID)))
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}
