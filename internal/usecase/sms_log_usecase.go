package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// SMSLogUsecase exposes the SMS sent on behalf of a user.
type SMSLogUsecase interface {
	ListSMSLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SMSLog, error)
}
