package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"alert_id": "a1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"alert_id":"a1"},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusConflict, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", map[string]string{"phone": "phone"}))

			var body ProblemPayload
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-42", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, map[string]string{"phone": "phone"}, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error without details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrContactNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"details"`)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		c, rec := newContext()

		err := errors.Wrap(domainerrors.ErrAlertAlreadyActive.WithDetails("a1"), "trigger")
		require.NoError(t, HandleAppError(c, err))

		var body ProblemPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALERT_ALREADY_ACTIVE", body.Error.Code)
		assert.Equal(t, map[string]string{"reason": "a1"}, body.Error.Details)
	})

	t.Run("other errors are handed back", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, assert.AnError)

		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, c.Response().Committed)
		assert.Zero(t, rec.Body.Len())
	})
}
