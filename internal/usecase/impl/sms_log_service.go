package impl

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultSMSLogLimit = 50
	maxSMSLogLimit     = 200
)

type smsLogService struct {
	smsLogRepo repository.SMSLogRepository
}

// NewSMSLogService creates the SMS log reader
func NewSMSLogService(smsLogRepo repository.SMSLogRepository) usecase.SMSLogUsecase {
	return &smsLogService{smsLogRepo: smsLogRepo}
}

func (s *smsLogService) ListSMSLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SMSLog, error) {
	switch {
	case limit <= 0:
		limit = defaultSMSLogLimit
	case limit > maxSMSLogLimit:
		limit = maxSMSLogLimit
	}

	logs, err := s.smsLogRepo.FindSMSLogsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sms logs")
	}

	if logs == nil {
		logs = []*entity.SMSLog{}
	}

	return logs, nil
}
