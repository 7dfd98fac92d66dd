package impl

import (
	"context"
	"testing"

	"guardian/internal/domain/entity"
	mockRepo "guardian/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSLogService_ListSMSLogs_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: defaultSMSLogLimit},
		{name: "negative", limit: -1, wantLimit: defaultSMSLogLimit},
		{name: "within range", limit: 20, wantLimit: 20},
		{name: "capped", limit: 1000, wantLimit: maxSMSLogLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockSMSLogRepository(t)
			service := NewSMSLogService(repo)

			ctx := context.Background()
			userID := uuid.New()
			repo.EXPECT().FindSMSLogsByUser(ctx, userID, tt.wantLimit).Return(nil, nil)

			logs, err := service.ListSMSLogs(ctx, userID, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, []*entity.SMSLog{}, logs)
		})
	}
}
