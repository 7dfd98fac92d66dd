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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert. The notification log starts empty.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)
	alertM.Notifications = nil

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLedgerWriteFailed.WithDetails("duplicate alert id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	return nil
}

// FindAlertByID retrieves an alert with its notification log in sent order.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Preload("Notifications", orderBySentAt).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertsByUser retrieves a user's alerts, newest first.
func (repo *alertRepository) FindAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	return repo.findAlerts(ctx, repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindActiveAlertsByUser retrieves a user's alerts that are still active, newest first.
func (repo *alertRepository) FindActiveAlertsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Alert, error) {
	return repo.findAlerts(ctx, repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.AlertStatusActive)))
}

func (repo *alertRepository) findAlerts(_ context.Context, query *gorm.DB) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := query.
		Preload("Notifications", orderBySentAt).
		Order("timestamp DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// UpdateAlert applies the present fields of the patch and returns the stored alert.
// A status change only applies while the alert is active; a closed alert is returned unchanged.
func (repo *alertRepository) UpdateAlert(ctx context.Context, id uuid.UUID, patch *entity.AlertPatch) (*entity.Alert, error) {
	updates := map[string]any{}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.ResolvedAt != nil {
		updates["resolved_at"] = *patch.ResolvedAt
	}
	if patch.ResolvedBy != nil {
		updates["resolved_by"] = *patch.ResolvedBy
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		query := repo.db.WithContext(ctx).
			Model(&model.AlertModel{}).
			Where("id = ?", id)
		if patch.Status != nil {
			query = query.Where("status = ?", string(entity.AlertStatusActive))
		}

		if err := query.Updates(updates).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update alert")
		}
	}

	// Zero affected rows means either a missing alert or a closed one; the read tells them apart.
	return repo.FindAlertByID(ctx, id)
}

// AppendNotificationLog inserts one delivery outcome row.
func (repo *alertRepository) AppendNotificationLog(ctx context.Context, entry *entity.NotificationLog) error {
	entryM := fromNotificationDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append notification log")
	}

	entry.ID = entryM.ID

	return nil
}

func orderBySentAt(db *gorm.DB) *gorm.DB {
	return db.Order("sent_at ASC")
}

// --- Mapper Functions ---

func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	contacts := make([]uuid.UUID, 0, len(data.ContactsNotified))
	contacts = append(contacts, data.ContactsNotified...)

	logs := make([]*entity.NotificationLog, 0, len(data.Notifications))
	for _, n := range data.Notifications {
		logs = append(logs, toNotificationDomain(n))
	}

	return &entity.Alert{
		ID:     data.ID,
		UserID: data.UserID,
		Type:   entity.AlertType(data.Type),
		Location: entity.Location{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Timestamp: data.LocationTimestamp.UTC(),
			Accuracy:  data.Accuracy,
		},
		Timestamp:         data.Timestamp.UTC(),
		Status:            entity.AlertStatus(data.Status),
		ContactsNotified:  contacts,
		NotificationsSent: logs,
		ResolvedAt:        data.ResolvedAt,
		ResolvedBy:        data.ResolvedBy,
		Notes:             data.Notes,
	}
}

func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	contacts := make([]uuid.UUID, 0, len(data.ContactsNotified))
	contacts = append(contacts, data.ContactsNotified...)

	return &model.AlertModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Type:              string(data.Type),
		Status:            string(data.Status),
		Latitude:          data.Location.Latitude,
		Longitude:         data.Location.Longitude,
		Accuracy:          data.Location.Accuracy,
		LocationTimestamp: data.Location.Timestamp,
		ContactsNotified:  contacts,
		Timestamp:         data.Timestamp,
		ResolvedAt:        data.ResolvedAt,
		ResolvedBy:        data.ResolvedBy,
		Notes:             data.Notes,
	}
}

func toNotificationDomain(data *model.AlertNotificationModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:        data.ID,
		AlertID:   data.AlertID,
		ContactID: data.ContactID,
		Method:    entity.DeliveryMethod(data.Method),
		SentAt:    data.SentAt,
		Status:    entity.DeliveryStatus(data.Status),
		Message:   data.Message,
		Error:     data.Error,
	}
}

func fromNotificationDomain(data *entity.NotificationLog) *model.AlertNotificationModel {
	if data == nil {
		return nil
	}

	return &model.AlertNotificationModel{
		ID:        data.ID,
		AlertID:   data.AlertID,
		ContactID: data.ContactID,
		Method:    string(data.Method),
		Status:    string(data.Status),
		Message:   data.Message,
		Error:     data.Error,
		SentAt:    data.SentAt,
	}
}
