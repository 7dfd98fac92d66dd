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

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// CreateContact persists a new contact.
func (repo *contactRepository) CreateContact(ctx context.Context, contact *entity.EmergencyContact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid contact")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindContactByID retrieves a contact by its unique ID.
func (repo *contactRepository) FindContactByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyContact, error) {
	var contactM model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

// FindContactsByUser retrieves a user's contacts. Priority ties keep insertion order.
func (repo *contactRepository) FindContactsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error) {
	var contactModels []*model.EmergencyContactModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("priority ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contacts by user")
	}

	contacts := make([]*entity.EmergencyContact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// UpdateContact applies the present fields and returns the stored contact.
func (repo *contactRepository) UpdateContact(ctx context.Context, id uuid.UUID, update *repository.ContactUpdate) (*entity.EmergencyContact, error) {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Relationship != nil {
		updates["relationship"] = *update.Relationship
	}
	if update.Priority != nil {
		updates["priority"] = *update.Priority
	}
	if update.Verified != nil {
		updates["verified"] = *update.Verified
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.EmergencyContactModel{}).
			Where("id = ?", id).
			Updates(updates)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
		}

		if result.RowsAffected == 0 {
			return nil, repository.ErrContactNotFound
		}
	}

	return repo.FindContactByID(ctx, id)
}

// DeleteContact removes a contact permanently.
func (repo *contactRepository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmergencyContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.EmergencyContactModel) *entity.EmergencyContact {
	if data == nil {
		return nil
	}

	return &entity.EmergencyContact{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		Relationship: data.Relationship,
		Priority:     data.Priority,
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.EmergencyContact) *model.EmergencyContactModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyContactModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		Relationship: data.Relationship,
		Priority:     data.Priority,
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
