package notification

import (
	"context"
	"log/slog"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"

	"github.com/google/uuid"
)

// recordingSMSSender writes every attempt of the wrapped sender to sms_logs.
type recordingSMSSender struct {
	next   service.SMSSender
	repo   repository.SMSLogRepository
	mock   bool
	logger *slog.Logger
}

// NewRecordingSMSSender wraps an SMS sender with sms_logs bookkeeping
func NewRecordingSMSSender(next service.SMSSender, repo repository.SMSLogRepository, mock bool, logger *slog.Logger) service.SMSSender {
	return &recordingSMSSender{
		next:   next,
		repo:   repo,
		mock:   mock,
		logger: logger,
	}
}

// SendSMS forwards the message; a failed log write never changes the send result.
func (s *recordingSMSSender) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	sid, sendErr := s.next.SendSMS(ctx, msg)

	entry := &entity.SMSLog{
		To:         msg.To,
		Message:    msg.Body,
		Status:     entity.DeliveryStatusSent,
		ProviderID: sid,
		Mock:       s.mock,
		SentAt:     time.Now().UTC(),
	}
	if msg.UserID != uuid.Nil {
		userID := msg.UserID
		entry.UserID = &userID
	}
	if sendErr != nil {
		entry.Status = entity.DeliveryStatusFailed
		entry.Error = sendErr.Error()
	}

	if err := s.repo.CreateSMSLog(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.WarnContext(ctx, "Failed to record sms log",
			slog.String("to", msg.To),
			slog.Any("error", err),
		)
	}

	return sid, sendErr
}
