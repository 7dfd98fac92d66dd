// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a person the owning user wants reached when they need help.
type EmergencyContact struct {
	ID           uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the contact.
	UserID       uuid.UUID `json:"user_id"`      // The ID of the user who owns this contact.
	Name         string    `json:"name"`         // Display name of the contact.
	Phone        string    `json:"phone"`        // Phone number, digits and "+()- " only.
	Email        string    `json:"email"`        // Optional email address.
	Relationship string    `json:"relationship"` // Relationship label (e.g. "sister", "friend").
	Priority     int       `json:"priority"`     // Ascending order in which the contact is listed.
	Verified     bool      `json:"verified"`     // Whether the contact confirmed the phone number.
	CreatedAt    time.Time `json:"created_at"`   // Timestamp of when this contact was created.
	UpdatedAt    time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// Recipient is a registered user a phone number resolved to.
type Recipient struct {
	UserID    uuid.UUID `json:"user_id"`
	PushToken string    `json:"push_token"` // Empty when the user has no usable push destination.
}

// HasPushAddress reports whether the recipient can be reached by push.
func (r *Recipient) HasPushAddress() bool {
	return r != nil && r.PushToken != ""
}
