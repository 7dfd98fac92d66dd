package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertProfileInput defines the data kept about a user.
type UpsertProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.User, error)

	// GetSettings returns the user's app settings.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// UpdateSettings applies a partial update and returns the resulting settings.
	// A new location retention also applies to the history already recorded.
	UpdateSettings(ctx context.Context, userID uuid.UUID, patch *entity.SettingsPatch) (*entity.UserSettings, error)

	// VerifySOSPin checks pin against the stored hash.
	VerifySOSPin(ctx context.Context, userID uuid.UUID, pin string) error
}
