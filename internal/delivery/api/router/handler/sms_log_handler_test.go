package handler

import (
	"net/http"
	"testing"

	"guardian/internal/domain/entity"
	mockUsecase "guardian/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSMSLogHandler_ListSMSLogs(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantStatus int
	}{
		{name: "default limit", target: "/api/v1/sms-logs", wantLimit: 0, wantStatus: http.StatusOK},
		{name: "explicit limit", target: "/api/v1/sms-logs?limit=20", wantLimit: 20, wantStatus: http.StatusOK},
		{name: "not a number", target: "/api/v1/sms-logs?limit=many", wantStatus: http.StatusBadRequest},
		{name: "negative", target: "/api/v1/sms-logs?limit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smsLogUC := mockUsecase.NewMockSMSLogUsecase(t)
			if tt.wantStatus == http.StatusOK {
				smsLogUC.EXPECT().ListSMSLogs(mock.Anything, userID, tt.wantLimit).Return([]*entity.SMSLog{}, nil)
			}
			h := NewSMSLogHandler(SMSLogHandlerParams{SMSLogUC: smsLogUC})

			c, rec := newTestContext(http.MethodGet, tt.target, "", userID)
			require.NoError(t, h.ListSMSLogs(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
