// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	contactAddedTitle = "You've been added as an emergency contact"
	contactAddedBody  = "%s added you as an emergency contact in SOS Guardian. You'll receive instant alerts if they need help."

	contactAddedTimeout = 10 * time.Second
)

type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	deviceRepo  repository.DeviceRepository
	push        service.PushSender
	logger      *slog.Logger
}

// NewContactService creates the contact directory
func NewContactService(
	txManager repository.TransactionManager,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	push service.PushSender,
	logger *slog.Logger,
) usecase.ContactDirectory {
	return &contactService{
		txManager:   txManager,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		deviceRepo:  deviceRepo,
		push:        push,
		logger:      logger,
	}
}

// ListContacts returns the user's contacts ordered by priority
func (s *contactService) ListContacts(ctx context.Context, callerID, userID uuid.UUID) ([]*entity.EmergencyContact, error) {
	if callerID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "contacts belong to another user")
	}

	contacts, err := s.contactRepo.FindContactsByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error())
	}

	if contacts == nil {
		contacts = []*entity.EmergencyContact{}
	}

	return contacts, nil
}

// ResolveRecipient maps a phone number to a registered user and their latest push token
func (s *contactService) ResolveRecipient(ctx context.Context, phone string) (*entity.Recipient, error) {
	normalized := util.NormalizePhone(phone)
	if normalized == "" {
		return nil, nil
	}

	user, err := s.userRepo.FindByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error())
	}

	recipient := &entity.Recipient{UserID: user.ID}

	device, err := s.deviceRepo.FindLatestActiveDevice(ctx, user.ID)
	switch {
	case err == nil:
		if device.CanReceivePush() {
			recipient.PushToken = device.PushToken
		}
	case errors.Is(err, repository.ErrDeviceNotFound):
	default:
		return nil, domainerrors.ErrDirectoryUnavailable.WithDetails(err.Error())
	}

	return recipient, nil
}

// AddContact creates a contact; priority defaults to after the last existing contact
func (s *contactService) AddContact(ctx context.Context, userID uuid.UUID, input *usecase.AddContactInput) (*entity.EmergencyContact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	phone := strings.TrimSpace(input.Phone)
	if !util.IsValidPhone(phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	now := time.Now().UTC()
	contact := &entity.EmergencyContact{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(input.Email),
		Relationship: strings.TrimSpace(input.Relationship),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		if input.Priority != nil {
			contact.Priority = *input.Priority
		} else {
			existing, err := contactRepo.FindContactsByUser(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to read existing contacts")
			}
			for _, c := range existing {
				if c.Priority >= contact.Priority {
					contact.Priority = c.Priority + 1
				}
			}
		}

		return errors.Wrap(contactRepo.CreateContact(ctx, contact), "failed to create contact")
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Emergency contact added",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", contact.ID.String()),
	)

	s.notifyContactAdded(ctx, userID, contact)

	return contact, nil
}

// notifyContactAdded tells a registered contact they were added. Failures are only logged.
func (s *contactService) notifyContactAdded(ctx context.Context, userID uuid.UUID, contact *entity.EmergencyContact) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), contactAddedTimeout)
	defer cancel()

	recipient, err := s.ResolveRecipient(ctx, contact.Phone)
	if err != nil {
		s.logger.WarnContext(ctx, "Skipping contact-added push", slog.Any("error", err))

		return
	}
	if !recipient.HasPushAddress() {
		return
	}

	addedBy := "Someone"
	if owner, err := s.userRepo.FindByID(ctx, userID); err == nil && owner.Name != "" {
		addedBy = owner.Name
	}

	_, err = s.push.SendPush(ctx, &service.PushMessage{
		Token: recipient.PushToken,
		Title: contactAddedTitle,
		Body:  fmt.Sprintf(contactAddedBody, addedBy),
		Data: map[string]string{
			"type":    constants.PushTypeContactAdded,
			"addedBy": userID.String(),
		},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Contact-added push failed",
			slog.String("contact_id", contact.ID.String()),
			slog.Any("error", err),
		)
	}
}

// UpdateContact applies a partial update to a contact owned by the user
func (s *contactService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input *usecase.UpdateContactInput) (*entity.EmergencyContact, error) {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return nil, err
	}

	update := &repository.ContactUpdate{
		Email:        trimmed(input.Email),
		Relationship: trimmed(input.Relationship),
		Priority:     input.Priority,
		Verified:     input.Verified,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		update.Name = &name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if !util.IsValidPhone(phone) {
			return nil, domainerrors.ErrInvalidPhone
		}
		update.Phone = &phone
	}

	contact, err := s.contactRepo.UpdateContact(ctx, contactID, update)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, errors.WithStack(domainerrors.ErrContactNotFound)
		}

		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

// DeleteContact removes a contact owned by the user
func (s *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return err
	}

	if err := s.contactRepo.DeleteContact(ctx, contactID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return errors.WithStack(domainerrors.ErrContactNotFound)
		}

		return errors.Wrap(err, "failed to delete contact")
	}

	s.logger.InfoContext(ctx, "Emergency contact deleted",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", contactID.String()),
	)

	return nil
}

func (s *contactService) ownedContact(ctx context.Context, userID, contactID uuid.UUID) (*entity.EmergencyContact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, errors.WithStack(domainerrors.ErrContactNotFound)
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	if contact.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "contact belongs to another user")
	}

	return contact, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
