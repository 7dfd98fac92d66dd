package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatePhone is returned when a phone number is already registered to another user.
	ErrDuplicatePhone = errors.New("phone already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhone retrieves a single user by normalized phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// FindSettingsForUpdate reads a user's settings and locks them until the
	// running transaction ends.
	FindSettingsForUpdate(ctx context.Context, id uuid.UUID) (*entity.UserSettings, error)

	// UpdateSettings replaces a user's settings.
	UpdateSettings(ctx context.Context, id uuid.UUID, settings *entity.UserSettings) error
}
