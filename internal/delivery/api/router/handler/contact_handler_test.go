package handler

import (
	"encoding/json"
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

func TestContactHandler_AddContact(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		body        string
		setup       func(directory *mockUsecase.MockContactDirectory)
		wantStatus  int
		wantDetails map[string]string
	}{
		{
			name: "created",
			body: `{"name":"Carla","phone":"+1 555 000 1111","relationship":"sister"}`,
			setup: func(directory *mockUsecase.MockContactDirectory) {
				directory.EXPECT().
					AddContact(mock.Anything, userID, &usecase.AddContactInput{
						Name:         "Carla",
						Phone:        "+1 555 000 1111",
						Relationship: "sister",
					}).
					Return(&entity.EmergencyContact{ID: uuid.New(), UserID: userID, Name: "Carla", Phone: "+15550001111"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing name and bad phone",
			body:        `{"phone":"call me"}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"name": "required", "phone": "phone"},
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := mockUsecase.NewMockContactDirectory(t)
			if tt.setup != nil {
				tt.setup(directory)
			}
			h := NewContactHandler(ContactHandlerParams{Directory: directory})

			c, rec := newTestContext(http.MethodPost, "/api/v1/contacts", tt.body, userID)
			require.NoError(t, h.AddContact(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantDetails != nil {
				env := decodeEnvelope(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantDetails, env.Error.Details)
			}
		})
	}
}

func TestContactHandler_ListContacts(t *testing.T) {
	userID := uuid.New()
	directory := mockUsecase.NewMockContactDirectory(t)
	directory.EXPECT().ListContacts(mock.Anything, userID, userID).Return([]*entity.EmergencyContact{
		{ID: uuid.New(), Name: "Carla", Priority: 0},
		{ID: uuid.New(), Name: "Dan", Priority: 1},
	}, nil)
	h := NewContactHandler(ContactHandlerParams{Directory: directory})

	c, rec := newTestContext(http.MethodGet, "/api/v1/contacts", "", userID)
	require.NoError(t, h.ListContacts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.EmergencyContact
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Carla", got[0].Name)
}

func TestContactHandler_UpdateContact(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		directory := mockUsecase.NewMockContactDirectory(t)
		directory.EXPECT().
			UpdateContact(mock.Anything, userID, contactID, mock.MatchedBy(func(in *usecase.UpdateContactInput) bool {
				return in.Name == nil && in.Priority != nil && *in.Priority == 3
			})).
			Return(&entity.EmergencyContact{ID: contactID, Priority: 3}, nil)
		h := NewContactHandler(ContactHandlerParams{Directory: directory})

		c, rec := newTestContext(http.MethodPatch, "/", `{"priority":3}`, userID)
		require.NoError(t, h.UpdateContact(withParam(c, contactID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("contact of another user", func(t *testing.T) {
		directory := mockUsecase.NewMockContactDirectory(t)
		directory.EXPECT().UpdateContact(mock.Anything, userID, contactID, mock.Anything).
			Return(nil, domainerrors.ErrContactNotFound)
		h := NewContactHandler(ContactHandlerParams{Directory: directory})

		c, rec := newTestContext(http.MethodPatch, "/", `{"verified":true}`, userID)
		require.NoError(t, h.UpdateContact(withParam(c, contactID.String())))
		assert.Equal(t, domainerrors.ErrContactNotFound.HTTPCode(), rec.Code)
	})
}

func TestContactHandler_DeleteContact(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()

	directory := mockUsecase.NewMockContactDirectory(t)
	directory.EXPECT().DeleteContact(mock.Anything, userID, contactID).Return(nil)
	h := NewContactHandler(ContactHandlerParams{Directory: directory})

	c, rec := newTestContext(http.MethodDelete, "/", "", userID)
	require.NoError(t, h.DeleteContact(withParam(c, contactID.String())))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
