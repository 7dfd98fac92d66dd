package postgres

import (
	"context"
	"encoding/json"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// timerRepository implements the repository.TimerRepository interface.
type timerRepository struct {
	db *gorm.DB
}

// NewTimerRepository is the constructor for timerRepository.
func NewTimerRepository(db *gorm.DB) repository.TimerRepository {
	return &timerRepository{
		db: db,
	}
}

// CreateTimer persists a new timer.
func (repo *timerRepository) CreateTimer(ctx context.Context, timer *entity.SafetyTimer) error {
	timerM, err := fromTimerDomain(timer)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(timerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create timer")
	}

	timer.ID = timerM.ID
	timer.CreatedAt = timerM.CreatedAt
	timer.UpdatedAt = timerM.UpdatedAt

	return nil
}

// FindTimerByID retrieves a timer by its unique ID.
func (repo *timerRepository) FindTimerByID(ctx context.Context, id uuid.UUID) (*entity.SafetyTimer, error) {
	var timerM model.SafetyTimerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&timerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimerNotFound
		}

		return nil, errors.Wrap(err, "failed to find timer by ID")
	}

	return toTimerDomain(&timerM)
}

// FindActiveTimerByUser retrieves the running timer of a user.
func (repo *timerRepository) FindActiveTimerByUser(ctx context.Context, userID uuid.UUID) (*entity.SafetyTimer, error) {
	var timerM model.SafetyTimerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.TimerStatusActive)).
		Order("start_time DESC").
		First(&timerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimerNotFound
		}

		return nil, errors.Wrap(err, "failed to find active timer")
	}

	return toTimerDomain(&timerM)
}

// FindOverdueTimers retrieves active timers whose end time has passed.
func (repo *timerRepository) FindOverdueTimers(ctx context.Context, now time.Time) ([]*entity.SafetyTimer, error) {
	var timerModels []*model.SafetyTimerModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND end_time < ?", string(entity.TimerStatusActive), now).
		Order("end_time ASC").
		Find(&timerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue timers")
	}

	timers := make([]*entity.SafetyTimer, 0, len(timerModels))
	for _, timerM := range timerModels {
		timer, err := toTimerDomain(timerM)
		if err != nil {
			return nil, err
		}
		timers = append(timers, timer)
	}

	return timers, nil
}

// UpdateTimerStatus moves an active timer to a terminal status.
func (repo *timerRepository) UpdateTimerStatus(ctx context.Context, id uuid.UUID, status entity.TimerStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafetyTimerModel{}).
		Where("id = ? AND status = ?", id, string(entity.TimerStatusActive)).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update timer status")
	}

	if result.RowsAffected == 0 {
		return repo.inactiveOrMissing(ctx, id)
	}

	return nil
}

// AppendCheckpoint concatenates the checkpoint onto the stored array in place.
func (repo *timerRepository) AppendCheckpoint(ctx context.Context, id uuid.UUID, checkpoint *entity.TimerCheckpoint) error {
	raw, err := json.Marshal([]*entity.TimerCheckpoint{checkpoint})
	if err != nil {
		return errors.Wrap(err, "failed to encode checkpoint")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SafetyTimerModel{}).
		Where("id = ? AND status = ?", id, string(entity.TimerStatusActive)).
		Update("checkpoints", gorm.Expr("checkpoints || ?::jsonb", string(raw)))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append checkpoint")
	}

	if result.RowsAffected == 0 {
		return repo.inactiveOrMissing(ctx, id)
	}

	return nil
}

func (repo *timerRepository) inactiveOrMissing(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SafetyTimerModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count timers")
	}

	if count == 0 {
		return repository.ErrTimerNotFound
	}

	return repository.ErrTimerNotActive
}

// --- Mapper Functions ---

func toTimerDomain(data *model.SafetyTimerModel) (*entity.SafetyTimer, error) {
	if data == nil {
		return nil, nil
	}

	timer := &entity.SafetyTimer{
		ID:              data.ID,
		UserID:          data.UserID,
		DurationMinutes: data.DurationMinutes,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Status:          entity.TimerStatus(data.Status),
		Checkpoints:     []*entity.TimerCheckpoint{},
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Checkpoints) > 0 {
		if err := json.Unmarshal(data.Checkpoints, &timer.Checkpoints); err != nil {
			return nil, errors.Wrap(err, "failed to decode checkpoints")
		}
	}
	if len(data.Route) > 0 {
		if err := json.Unmarshal(data.Route, &timer.Route); err != nil {
			return nil, errors.Wrap(err, "failed to decode route")
		}
	}

	return timer, nil
}

func fromTimerDomain(data *entity.SafetyTimer) (*model.SafetyTimerModel, error) {
	if data == nil {
		return nil, nil
	}

	checkpoints := data.Checkpoints
	if checkpoints == nil {
		checkpoints = []*entity.TimerCheckpoint{}
	}
	rawCheckpoints, err := json.Marshal(checkpoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode checkpoints")
	}

	timerM := &model.SafetyTimerModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DurationMinutes: data.DurationMinutes,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		Status:          string(data.Status),
		Checkpoints:     datatypes.JSON(rawCheckpoints),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Route) > 0 {
		rawRoute, err := json.Marshal(data.Route)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode route")
		}
		timerM.Route = datatypes.JSON(rawRoute)
	}

	return timerM, nil
}
