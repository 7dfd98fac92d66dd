package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockUsecase "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertHandlerFixture struct {
	handler      *AlertHandler
	orchestrator *mockUsecase.MockAlertOrchestrator
	ledger       *mockUsecase.MockAlertLedger
}

func createTestAlertHandler(t *testing.T) *alertHandlerFixture {
	orchestrator := mockUsecase.NewMockAlertOrchestrator(t)
	ledger := mockUsecase.NewMockAlertLedger(t)

	return &alertHandlerFixture{
		handler: NewAlertHandler(AlertHandlerParams{
			Orchestrator: orchestrator,
			Ledger:       ledger,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		orchestrator: orchestrator,
		ledger:       ledger,
	}
}

func TestAlertHandler_TriggerSOS(t *testing.T) {
	userID := uuid.New()
	alertID := uuid.New()

	tests := []struct {
		name        string
		body        string
		setup       func(f *alertHandlerFixture)
		wantStatus  int
		wantWarning string
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name: "location forwarded and sos by default",
			body: `{"location":{"latitude":25.033,"longitude":121.5654}}`,
			setup: func(f *alertHandlerFixture) {
				f.orchestrator.EXPECT().
					TriggerAlert(mock.Anything, userID, mock.MatchedBy(func(in *usecase.TriggerAlertInput) bool {
						return in.Type == entity.AlertTypeSOS && in.Location != nil &&
							in.Location.Latitude == 25.033 && in.Location.Longitude == 121.5654
					})).
					Return(&usecase.TriggerResult{AlertID: alertID, ContactsNotified: 2}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "directory warning reported",
			body: `{"type":"manual"}`,
			setup: func(f *alertHandlerFixture) {
				f.orchestrator.EXPECT().
					TriggerAlert(mock.Anything, userID, mock.MatchedBy(func(in *usecase.TriggerAlertInput) bool {
						return in.Type == entity.AlertTypeManual && in.Location == nil
					})).
					Return(&usecase.TriggerResult{AlertID: alertID, Warning: domainerrors.ErrDirectoryUnavailable}, nil)
			},
			wantStatus:  http.StatusCreated,
			wantWarning: domainerrors.ErrDirectoryUnavailable.ErrorCode(),
		},
		{
			name:       "unknown type rejected",
			body:       `{"type":"panic"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "latitude out of range",
			body:       `{"location":{"latitude":91,"longitude":0}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "already active",
			body: `{}`,
			setup: func(f *alertHandlerFixture) {
				f.orchestrator.EXPECT().TriggerAlert(mock.Anything, userID, mock.Anything).
					Return(nil, domainerrors.ErrAlertAlreadyActive.WithDetails(alertID.String()))
			},
			wantStatus:  http.StatusConflict,
			wantCode:    domainerrors.ErrAlertAlreadyActive.ErrorCode(),
			wantDetails: map[string]string{"reason": alertID.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAlertHandler(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			c, rec := newTestContext(http.MethodPost, "/api/v1/alerts/sos", tt.body, userID)
			require.NoError(t, f.handler.TriggerSOS(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				if tt.wantDetails != nil {
					assert.Equal(t, tt.wantDetails, env.Error.Details)
				}

				return
			}

			var got TriggerAlertResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, alertID, got.AlertID)
			assert.Equal(t, tt.wantWarning, got.Warning)
		})
	}
}

func TestAlertHandler_TriggerSOS_Anonymous(t *testing.T) {
	f := createTestAlertHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/alerts/sos", `{}`, uuid.Nil)
	require.NoError(t, f.handler.TriggerSOS(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAlertHandler_ResolveAlert(t *testing.T) {
	userID := uuid.New()
	alertID := uuid.New()

	t.Run("false alarm with notes", func(t *testing.T) {
		f := createTestAlertHandler(t)
		f.orchestrator.EXPECT().
			ResolveAlert(mock.Anything, userID, alertID, mock.MatchedBy(func(in *usecase.ResolveAlertInput) bool {
				return in.Status == entity.AlertStatusFalseAlarm && in.Notes != nil && *in.Notes == "pocket dial"
			})).
			Return(nil)

		c, rec := newTestContext(http.MethodPost, "/", `{"status":"false_alarm","notes":"pocket dial"}`, userID)
		require.NoError(t, f.handler.ResolveAlert(withParam(c, alertID.String())))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := createTestAlertHandler(t)

		c, rec := newTestContext(http.MethodPost, "/", `{}`, userID)
		require.NoError(t, f.handler.ResolveAlert(withParam(c, "not-a-uuid")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := createTestAlertHandler(t)

		c, rec := newTestContext(http.MethodPost, "/", `{"status":"active"}`, userID)
		require.NoError(t, f.handler.ResolveAlert(withParam(c, alertID.String())))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not authorized", func(t *testing.T) {
		f := createTestAlertHandler(t)
		f.orchestrator.EXPECT().ResolveAlert(mock.Anything, userID, alertID, mock.Anything).
			Return(domainerrors.ErrNotAuthorized)

		c, rec := newTestContext(http.MethodPost, "/", `{}`, userID)
		require.NoError(t, f.handler.ResolveAlert(withParam(c, alertID.String())))
		assert.Equal(t, domainerrors.ErrNotAuthorized.HTTPCode(), rec.Code)
	})
}

func TestAlertHandler_GetAlert(t *testing.T) {
	userID := uuid.New()
	alertID := uuid.New()

	t.Run("own alert", func(t *testing.T) {
		f := createTestAlertHandler(t)
		f.ledger.EXPECT().GetAlert(mock.Anything, alertID).
			Return(&entity.Alert{ID: alertID, UserID: userID, Status: entity.AlertStatusActive}, nil)

		c, rec := newTestContext(http.MethodGet, "/", "", userID)
		require.NoError(t, f.handler.GetAlert(withParam(c, alertID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got entity.Alert
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, alertID, got.ID)
	})

	t.Run("alert of another user is hidden", func(t *testing.T) {
		f := createTestAlertHandler(t)
		f.ledger.EXPECT().GetAlert(mock.Anything, alertID).
			Return(&entity.Alert{ID: alertID, UserID: uuid.New()}, nil)

		c, rec := newTestContext(http.MethodGet, "/", "", userID)
		require.NoError(t, f.handler.GetAlert(withParam(c, alertID.String())))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAlertHandler_ListAlerts_StorageFailure(t *testing.T) {
	userID := uuid.New()
	f := createTestAlertHandler(t)
	f.ledger.EXPECT().ListAlerts(mock.Anything, userID).Return(nil, errors.New("connection reset"))

	c, _ := newTestContext(http.MethodGet, "/", "", userID)
	err := f.handler.ListAlerts(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

// cancelOnEvent ends the request once `after` events (default one) have been written.
type cancelOnEvent struct {
	*httptest.ResponseRecorder
	cancel context.CancelFunc
	after  int
	seen   int
}

func (w *cancelOnEvent) Write(p []byte) (int, error) {
	n, err := w.ResponseRecorder.Write(p)
	if strings.HasPrefix(string(p), "event: alert") {
		w.seen++
		if w.seen >= max(w.after, 1) {
			w.cancel()
		}
	}

	return n, err
}

func TestAlertHandler_StreamActiveAlerts(t *testing.T) {
	userID := uuid.New()
	live := &entity.LiveAlert{
		AlertID:   uuid.New(),
		UserID:    userID,
		Location:  entity.Location{Latitude: 25.033, Longitude: 121.5654},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:    entity.AlertStatusActive,
	}

	f := createTestAlertHandler(t)
	unsubscribed := false
	f.ledger.EXPECT().SubscribeActiveAlerts(mock.Anything, userID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error) {
			onChange(live)

			return func() { unsubscribed = true }, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _ := newTestContext(http.MethodGet, "/api/v1/alerts/active", "", userID)
	c.SetRequest(c.Request().WithContext(ctx))
	rec := &cancelOnEvent{ResponseRecorder: httptest.NewRecorder(), cancel: cancel}
	c.Response().Writer = rec

	require.NoError(t, f.handler.StreamActiveAlerts(c))

	assert.True(t, unsubscribed)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	require.True(t, strings.HasPrefix(body, "event: alert\ndata: "), body)

	payload := strings.TrimSuffix(strings.TrimPrefix(body, "event: alert\ndata: "), "\n\n")
	var got entity.LiveAlert
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, live.AlertID, got.AlertID)
	assert.Equal(t, entity.AlertStatusActive, got.Status)
}

func TestAlertHandler_StreamActiveAlerts_SubscribeFailure(t *testing.T) {
	userID := uuid.New()
	f := createTestAlertHandler(t)
	f.ledger.EXPECT().SubscribeActiveAlerts(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrInternalError)

	c, rec := newTestContext(http.MethodGet, "/api/v1/alerts/active", "", userID)
	require.NoError(t, f.handler.StreamActiveAlerts(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAlertHandler_StreamActiveAlerts_LargeSnapshot(t *testing.T) {
	userID := uuid.New()
	const snapshot = 40

	f := createTestAlertHandler(t)
	f.ledger.EXPECT().SubscribeActiveAlerts(mock.Anything, userID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, onChange func(*entity.LiveAlert)) (func(), error) {
			for range snapshot {
				onChange(&entity.LiveAlert{AlertID: uuid.New(), UserID: userID, Status: entity.AlertStatusActive})
			}

			return func() {}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _ := newTestContext(http.MethodGet, "/api/v1/alerts/active", "", userID)
	c.SetRequest(c.Request().WithContext(ctx))
	rec := &cancelOnEvent{ResponseRecorder: httptest.NewRecorder(), cancel: cancel, after: snapshot}
	c.Response().Writer = rec

	done := make(chan error, 1)
	go func() { done <- f.handler.StreamActiveAlerts(c) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not get past the snapshot replay")
	}

	assert.Equal(t, snapshot, strings.Count(rec.Body.String(), "event: alert\n"))
}

func TestLiveAlertQueue(t *testing.T) {
	q := newLiveAlertQueue()
	first, second := uuid.New(), uuid.New()

	q.push(&entity.LiveAlert{AlertID: first, Status: entity.AlertStatusActive})
	q.push(&entity.LiveAlert{AlertID: second, Status: entity.AlertStatusActive})
	q.push(&entity.LiveAlert{AlertID: first, Status: entity.AlertStatusResolved})

	select {
	case <-q.ready:
	default:
		t.Fatal("push did not signal")
	}

	got := q.drain()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].AlertID)
	assert.Equal(t, entity.AlertStatusResolved, got[0].Status)
	assert.Equal(t, second, got[1].AlertID)

	assert.Empty(t, q.drain())

	q.push(&entity.LiveAlert{AlertID: first, Status: entity.AlertStatusResolved})
	assert.Len(t, q.drain(), 1)
}
