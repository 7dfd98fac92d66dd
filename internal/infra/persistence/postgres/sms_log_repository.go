package postgres

import (
	"context"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultSMSLogLimit = 50

// smsLogRepository implements the repository.SMSLogRepository interface.
type smsLogRepository struct {
	db *gorm.DB
}

// NewSMSLogRepository is the constructor for smsLogRepository.
func NewSMSLogRepository(db *gorm.DB) repository.SMSLogRepository {
	return &smsLogRepository{
		db: db,
	}
}

// CreateSMSLog persists one SMS attempt.
func (repo *smsLogRepository) CreateSMSLog(ctx context.Context, log *entity.SMSLog) error {
	logM := fromSMSLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sms log")
	}

	log.ID = logM.ID

	return nil
}

// FindSMSLogsByUser retrieves the SMS sent on behalf of a user, newest first.
func (repo *smsLogRepository) FindSMSLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SMSLog, error) {
	if limit <= 0 {
		limit = defaultSMSLogLimit
	}

	var logModels []*model.SMSLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sms logs by user")
	}

	logs := make([]*entity.SMSLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toSMSLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toSMSLogDomain(data *model.SMSLogModel) *entity.SMSLog {
	if data == nil {
		return nil
	}

	return &entity.SMSLog{
		ID:         data.ID,
		UserID:     data.UserID,
		To:         data.To,
		Message:    data.Message,
		Status:     entity.DeliveryStatus(data.Status),
		ProviderID: data.ProviderID,
		Error:      data.Error,
		Mock:       data.Mock,
		SentAt:     data.SentAt,
	}
}

func fromSMSLogDomain(data *entity.SMSLog) *model.SMSLogModel {
	if data == nil {
		return nil
	}

	return &model.SMSLogModel{
		ID:         data.ID,
		UserID:     data.UserID,
		To:         data.To,
		Message:    data.Message,
		Status:     string(data.Status),
		ProviderID: data.ProviderID,
		Error:      data.Error,
		Mock:       data.Mock,
		SentAt:     data.SentAt,
	}
}
