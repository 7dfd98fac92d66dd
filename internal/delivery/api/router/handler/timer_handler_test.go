package handler

import (
	"net/http"
	"testing"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTimerHandler_StartTimer(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(engine *mockUsecase.MockSafetyTimerEngine)
		wantStatus int
	}{
		{
			name: "started",
			body: `{"duration_minutes":30}`,
			setup: func(engine *mockUsecase.MockSafetyTimerEngine) {
				engine.EXPECT().StartTimer(mock.Anything, userID, 30).
					Return(&entity.SafetyTimer{ID: uuid.New(), UserID: userID, DurationMinutes: 30, Status: entity.TimerStatusActive}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing duration",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "already running",
			body: `{"duration_minutes":15}`,
			setup: func(engine *mockUsecase.MockSafetyTimerEngine) {
				engine.EXPECT().StartTimer(mock.Anything, userID, 15).Return(nil, domainerrors.ErrTimerAlreadyActive)
			},
			wantStatus: domainerrors.ErrTimerAlreadyActive.HTTPCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mockUsecase.NewMockSafetyTimerEngine(t)
			if tt.setup != nil {
				tt.setup(engine)
			}
			h := NewTimerHandler(TimerHandlerParams{Engine: engine})

			c, rec := newTestContext(http.MethodPost, "/api/v1/timers", tt.body, userID)
			require.NoError(t, h.StartTimer(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTimerHandler_Stop(t *testing.T) {
	userID := uuid.New()
	timerID := uuid.New()

	t.Run("cancel", func(t *testing.T) {
		engine := mockUsecase.NewMockSafetyTimerEngine(t)
		engine.EXPECT().CancelTimer(mock.Anything, userID, timerID).Return(nil)
		h := NewTimerHandler(TimerHandlerParams{Engine: engine})

		c, rec := newTestContext(http.MethodPost, "/", "", userID)
		require.NoError(t, h.CancelTimer(withParam(c, timerID.String())))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("complete a stopped timer", func(t *testing.T) {
		engine := mockUsecase.NewMockSafetyTimerEngine(t)
		engine.EXPECT().CompleteTimer(mock.Anything, userID, timerID).Return(domainerrors.ErrTimerNotActive)
		h := NewTimerHandler(TimerHandlerParams{Engine: engine})

		c, rec := newTestContext(http.MethodPost, "/", "", userID)
		require.NoError(t, h.CompleteTimer(withParam(c, timerID.String())))
		assert.Equal(t, domainerrors.ErrTimerNotActive.HTTPCode(), rec.Code)
	})
}

func TestTimerHandler_CheckIn(t *testing.T) {
	userID := uuid.New()
	timerID := uuid.New()

	t.Run("with location", func(t *testing.T) {
		engine := mockUsecase.NewMockSafetyTimerEngine(t)
		engine.EXPECT().
			RecordCheckIn(mock.Anything, userID, timerID, mock.MatchedBy(func(loc *entity.Location) bool {
				return loc != nil && loc.Latitude == 1.5 && loc.Longitude == 2.5
			})).
			Return(nil)
		h := NewTimerHandler(TimerHandlerParams{Engine: engine})

		c, rec := newTestContext(http.MethodPost, "/", `{"location":{"latitude":1.5,"longitude":2.5}}`, userID)
		require.NoError(t, h.CheckIn(withParam(c, timerID.String())))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("without body", func(t *testing.T) {
		engine := mockUsecase.NewMockSafetyTimerEngine(t)
		engine.EXPECT().RecordCheckIn(mock.Anything, userID, timerID, (*entity.Location)(nil)).Return(nil)
		h := NewTimerHandler(TimerHandlerParams{Engine: engine})

		c, rec := newTestContext(http.MethodPost, "/", "", userID)
		require.NoError(t, h.CheckIn(withParam(c, timerID.String())))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
