package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	locations repository.LocationStore
	pinCost   int
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	locations repository.LocationStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		locations: locations,
		pinCost:   bcrypt.DefaultCost,
		logger:    logger,
	}
}

// GetProfile retrieves the user profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpsertProfile creates or updates the profile. The phone number is stored normalized
// and may belong to one user only, since it is how contacts are matched to users.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.User, error) {
	srv.logger.Info("Upserting user profile", "userID", userID)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	phone := ""
	if strings.TrimSpace(input.Phone) != "" {
		if !util.IsValidPhone(input.Phone) {
			return nil, domainerrors.ErrInvalidPhone
		}
		phone = util.NormalizePhone(input.Phone)
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Make sure nobody else owns the phone number
		if phone != "" {
			owner, err := userRepo.FindByPhone(ctx, phone)
			switch {
			case err == nil && owner.ID != userID:
				return errors.WithStack(domainerrors.ErrPhoneAlreadyUsed)
			case err != nil && !errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(err, "failed to check phone owner")
			}
		}

		// 2. Create or update
		now := time.Now().UTC()
		existing, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user")
			}

			user = &entity.User{
				ID:        userID,
				Name:      name,
				Phone:     phone,
				Settings:  entity.DefaultUserSettings(),
				CreatedAt: now,
				UpdatedAt: now,
			}

			return mapUserWriteError(userRepo.Create(ctx, user))
		}

		existing.Name = name
		existing.Phone = phone
		existing.UpdatedAt = now
		user = existing

		return mapUserWriteError(userRepo.Update(ctx, existing))
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetSettings returns the settings stored with the profile.
func (srv *profileService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &user.Settings, nil
}

// UpdateSettings merges the patch under a row lock so concurrent patches of
// different fields all survive.
func (srv *profileService) UpdateSettings(ctx context.Context, userID uuid.UUID, patch *entity.SettingsPatch) (*entity.UserSettings, error) {
	if patch.IsEmpty() {
		return srv.GetSettings(ctx, userID)
	}

	if hours := patch.AutoDeleteLocationAfterHours; hours != nil &&
		(*hours < entity.MinLocationRetentionHours || *hours > entity.MaxLocationRetentionHours) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("auto_delete_location_after must be between 1 and 720 hours")
	}

	var pinHash *string
	if patch.SOSPin != nil {
		hash, err := srv.hashSOSPin(*patch.SOSPin)
		if err != nil {
			return nil, err
		}
		pinHash = &hash
	}

	var settings *entity.UserSettings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		current, err := userRepo.FindSettingsForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user settings")
		}

		patch.ApplyTo(current)
		if pinHash != nil {
			current.SOSPinHash = *pinHash
		}

		if err := userRepo.UpdateSettings(ctx, userID, current); err != nil {
			return errors.Wrap(err, "failed to save user settings")
		}
		settings = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.InfoContext(ctx, "User settings updated",
		slog.String("user_id", userID.String()),
		slog.Bool("sos_pin_changed", pinHash != nil),
	)

	if patch.AutoDeleteLocationAfterHours != nil {
		// The settings are committed; a stale expiry only lasts until the next report.
		if err := srv.locations.SetRetention(ctx, userID, settings.LocationRetention()); err != nil {
			srv.logger.WarnContext(ctx, "Failed to apply location retention",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return settings, nil
}

// VerifySOSPin compares pin with the stored bcrypt hash.
func (srv *profileService) VerifySOSPin(ctx context.Context, userID uuid.UUID, pin string) error {
	settings, err := srv.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if !settings.HasSOSPin() {
		return errors.WithStack(domainerrors.ErrSOSPinNotSet)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(settings.SOSPinHash), []byte(pin)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errors.WithStack(domainerrors.ErrSOSPinMismatch)
		}

		return errors.Wrap(err, "failed to compare sos pin")
	}

	return nil
}

// hashSOSPin validates a 4 to 8 digit PIN and hashes it. An empty PIN clears it.
func (srv *profileService) hashSOSPin(pin string) (string, error) {
	if pin == "" {
		return "", nil
	}
	if !isSOSPin(pin) {
		return "", domainerrors.ErrValidationFailed.WithDetails("sos_pin must be 4 to 8 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), srv.pinCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash sos pin")
	}

	return string(hash), nil
}

func isSOSPin(pin string) bool {
	if len(pin) < 4 || len(pin) > 8 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func mapUserWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicatePhone):
		return errors.WithStack(domainerrors.ErrPhoneAlreadyUsed)
	default:
		return errors.Wrap(err, "failed to save user")
	}
}
