package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// SMSLogRepository stores every SMS handed to a provider.
type SMSLogRepository interface {
	// CreateSMSLog persists one SMS attempt.
	CreateSMSLog(ctx context.Context, log *entity.SMSLog) error

	// FindSMSLogsByUser retrieves the SMS sent on behalf of a user, newest first.
	FindSMSLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SMSLog, error)
}
