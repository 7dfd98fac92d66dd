package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Authentication happens elsewhere; the service only
// keeps what it needs to recognise a contact's phone number as a user.
type User struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) issued by the identity provider.
	Name      string       // The user's display name.
	Phone     string       // Normalized phone number (digits and a leading "+").
	Settings  UserSettings // App preferences.
	CreatedAt time.Time    // Timestamp of when this user was first seen.
	UpdatedAt time.Time    // Timestamp of the last modification to this user's data.
}
