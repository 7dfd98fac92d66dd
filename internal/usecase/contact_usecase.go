// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddContactInput defines the data required to add an emergency contact.
type AddContactInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
	Priority     *int   `json:"priority,omitempty"` // Appended after the last contact when nil.
}

// UpdateContactInput is a partial update. Nil fields keep the stored value.
type UpdateContactInput struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
	Verified     *bool   `json:"verified,omitempty"`
}

// ContactDirectory resolves who must be reached and how.
type ContactDirectory interface {
	// ListContacts returns the user's contacts ordered by priority. Only the owner may list them.
	ListContacts(ctx context.Context, callerID, userID uuid.UUID) ([]*entity.EmergencyContact, error)

	// ResolveRecipient maps a phone number to a registered user. A nil recipient
	// with a nil error means the number does not belong to any user.
	ResolveRecipient(ctx context.Context, phone string) (*entity.Recipient, error)

	// AddContact creates a contact owned by the user.
	AddContact(ctx context.Context, userID uuid.UUID, input *AddContactInput) (*entity.EmergencyContact, error)

	// UpdateContact applies a partial update to a contact owned by the user.
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input *UpdateContactInput) (*entity.EmergencyContact, error)

	// DeleteContact removes a contact owned by the user permanently.
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
