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

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase, *mockUsecase.MockLocationResolver) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	locationUC := mockUsecase.NewMockLocationResolver(t)

	return NewProfileHandler(ProfileHandlerParams{
		ProfileUC:  profileUC,
		LocationUC: locationUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), profileUC, locationUC
}

func TestProfileHandler_UpsertProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("saved", func(t *testing.T) {
		h, profileUC, _ := createTestProfileHandler(t)
		profileUC.EXPECT().
			UpsertProfile(mock.Anything, userID, &usecase.UpsertProfileInput{Name: "Ana", Phone: "+886 912 345 678"}).
			Return(&entity.User{ID: userID, Name: "Ana", Phone: "+886912345678"}, nil)

		c, rec := newTestContext(http.MethodPut, "/api/v1/me/profile", `{"name":"Ana","phone":"+886 912 345 678"}`, userID)
		require.NoError(t, h.UpsertProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"phone":"+886912345678"`)
	})

	t.Run("phone taken", func(t *testing.T) {
		h, profileUC, _ := createTestProfileHandler(t)
		profileUC.EXPECT().UpsertProfile(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrPhoneAlreadyUsed)

		c, rec := newTestContext(http.MethodPut, "/api/v1/me/profile", `{"name":"Ana","phone":"+15550001111"}`, userID)
		require.NoError(t, h.UpsertProfile(c))
		assert.Equal(t, domainerrors.ErrPhoneAlreadyUsed.HTTPCode(), rec.Code)
	})

	t.Run("name required", func(t *testing.T) {
		h, _, _ := createTestProfileHandler(t)

		c, rec := newTestContext(http.MethodPut, "/api/v1/me/profile", `{"phone":"+15550001111"}`, userID)
		require.NoError(t, h.UpsertProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	userID := uuid.New()
	h, profileUC, _ := createTestProfileHandler(t)
	profileUC.EXPECT().GetProfile(mock.Anything, userID).Return(nil, domainerrors.ErrNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/v1/me/profile", "", userID)
	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileHandler_ReportLocation(t *testing.T) {
	userID := uuid.New()

	t.Run("stored", func(t *testing.T) {
		h, _, locationUC := createTestProfileHandler(t)
		locationUC.EXPECT().
			SaveUserLocation(mock.Anything, userID, mock.MatchedBy(func(loc *entity.Location) bool {
				return loc.Latitude == 0 && loc.Longitude == 0 && loc.Accuracy != nil && *loc.Accuracy == 12
			})).
			Return(nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/me/location", `{"latitude":0,"longitude":0,"accuracy":12}`, userID)
		require.NoError(t, h.ReportLocation(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("coordinates required", func(t *testing.T) {
		h, _, _ := createTestProfileHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/me/location", `{"latitude":10}`, userID)
		require.NoError(t, h.ReportLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler_UpdateSettings(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update forwarded", func(t *testing.T) {
		h, profileUC, _ := createTestProfileHandler(t)
		profileUC.EXPECT().
			UpdateSettings(mock.Anything, userID, mock.MatchedBy(func(p *entity.SettingsPatch) bool {
				return p.ShakeToSOS != nil && *p.ShakeToSOS &&
					p.AutoDeleteLocationAfterHours != nil && *p.AutoDeleteLocationAfterHours == 12 &&
					p.SOSPin != nil && *p.SOSPin == "4821" &&
					p.NotificationSound == nil && p.Vibration == nil
			})).
			Return(&entity.UserSettings{
				ShakeToSOS:                   true,
				SOSPinHash:                   "$2a$10$hash",
				AutoDeleteLocationAfterHours: 12,
				NotificationSound:            true,
				Vibration:                    true,
			}, nil)

		c, rec := newTestContext(http.MethodPatch, "/api/v1/me/settings",
			`{"shake_to_sos":true,"auto_delete_location_after":12,"sos_pin":"4821"}`, userID)
		require.NoError(t, h.UpdateSettings(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got SettingsResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
		assert.Equal(t, SettingsResponse{
			ShakeToSOS:              true,
			SOSPinSet:               true,
			AutoDeleteLocationAfter: 12,
			NotificationSound:       true,
			Vibration:               true,
		}, got)
		assert.NotContains(t, rec.Body.String(), "hash")
		assert.NotContains(t, rec.Body.String(), "4821")
	})

	t.Run("out of range retention", func(t *testing.T) {
		h, profileUC, _ := createTestProfileHandler(t)
		profileUC.EXPECT().UpdateSettings(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("auto_delete_location_after must be between 1 and 720 hours"))

		c, rec := newTestContext(http.MethodPatch, "/api/v1/me/settings", `{"auto_delete_location_after":0}`, userID)
		require.NoError(t, h.UpdateSettings(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details["reason"], "auto_delete_location_after")
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _, _ := createTestProfileHandler(t)

		c, rec := newTestContext(http.MethodPatch, "/api/v1/me/settings", `{"vibration":"loud"}`, userID)
		require.NoError(t, h.UpdateSettings(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler_GetSettings(t *testing.T) {
	userID := uuid.New()
	h, profileUC, _ := createTestProfileHandler(t)
	defaults := entity.DefaultUserSettings()
	profileUC.EXPECT().GetSettings(mock.Anything, userID).Return(&defaults, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/me/settings", "", userID)
	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"shake_to_sos":false,"sos_pin_set":false,"auto_delete_location_after":24,"notification_sound":true,"vibration":true}`,
		string(decodeEnvelope(t, rec).Data))
}

func TestProfileHandler_VerifySOSPin(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		ucErr      error
		callsUC    bool
		wantStatus int
	}{
		{name: "match", body: `{"pin":"4821"}`, callsUC: true, wantStatus: http.StatusNoContent},
		{name: "mismatch", body: `{"pin":"1111"}`, callsUC: true, ucErr: domainerrors.ErrSOSPinMismatch, wantStatus: http.StatusForbidden},
		{name: "no pin set", body: `{"pin":"1111"}`, callsUC: true, ucErr: domainerrors.ErrSOSPinNotSet, wantStatus: http.StatusConflict},
		{name: "not digits", body: `{"pin":"12ab"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, profileUC, _ := createTestProfileHandler(t)
			if tt.callsUC {
				profileUC.EXPECT().VerifySOSPin(mock.Anything, userID, mock.Anything).Return(tt.ucErr)
			}

			c, rec := newTestContext(http.MethodPost, "/api/v1/me/settings/sos-pin/verify", tt.body, userID)
			require.NoError(t, h.VerifySOSPin(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
