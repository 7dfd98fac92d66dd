// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactUpdate is a partial contact update. Nil fields keep the stored value.
type ContactUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	Relationship *string
	Priority     *int
	Verified     *bool
}

// ContactRepository defines the persistence operations for emergency contacts.
type ContactRepository interface {
	// CreateContact persists a new contact.
	CreateContact(ctx context.Context, contact *entity.EmergencyContact) error

	// FindContactByID retrieves a contact by its unique ID.
	FindContactByID(ctx context.Context, id uuid.UUID) (*entity.EmergencyContact, error)

	// FindContactsByUser retrieves a user's contacts ordered by priority, then insertion order.
	FindContactsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error)

	// UpdateContact applies the present fields and returns the stored contact.
	UpdateContact(ctx context.Context, id uuid.UUID, update *ContactUpdate) (*entity.EmergencyContact, error)

	// DeleteContact removes a contact permanently.
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
