// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByPhone retrieves a single user by normalized phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhone
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the name and phone of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":  userM.Name,
			"phone": userM.Phone,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePhone
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindSettingsForUpdate takes a row lock so concurrent patches apply one after the other.
func (repo *userRepository) FindSettingsForUpdate(ctx context.Context, id uuid.UUID) (*entity.UserSettings, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "settings").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	settings := toSettingsDomain(userM.Settings.Data())

	return &settings, nil
}

// UpdateSettings replaces the settings document of a user.
func (repo *userRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings *entity.UserSettings) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("settings", datatypes.NewJSONType(fromSettingsDomain(*settings)))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Settings:  toSettingsDomain(data.Settings.Data()),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Phone != nil {
		user.Phone = *data.Phone
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Settings:  datatypes.NewJSONType(fromSettingsDomain(data.Settings)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	// An empty phone is stored as NULL so the unique index only covers real numbers.
	if data.Phone != "" {
		phone := data.Phone
		userM.Phone = &phone
	}

	return userM
}

func toSettingsDomain(data model.UserSettingsData) entity.UserSettings {
	return entity.UserSettings{
		ShakeToSOS:                   data.ShakeToSOS,
		SOSPinHash:                   data.SOSPinHash,
		AutoDeleteLocationAfterHours: data.AutoDeleteLocationAfterHours,
		NotificationSound:            data.NotificationSound,
		Vibration:                    data.Vibration,
	}
}

func fromSettingsDomain(data entity.UserSettings) model.UserSettingsData {
	return model.UserSettingsData{
		ShakeToSOS:                   data.ShakeToSOS,
		SOSPinHash:                   data.SOSPinHash,
		AutoDeleteLocationAfterHours: data.AutoDeleteLocationAfterHours,
		NotificationSound:            data.NotificationSound,
		Vibration:                    data.Vibration,
	}
}
