package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platforms a device can register from.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserDevice is a handset through which a user receives alert and timer pushes.
// The most recently updated active device is the one that gets pushed.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PushToken string    `json:"push_token"` // Expo or FCM token.
	DeviceID  string    `json:"device_id"`  // Client-chosen identifier, stable across token refreshes.
	Platform  string    `json:"platform"`   // ios or android.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanReceivePush reports whether a push can be addressed to the device.
func (d *UserDevice) CanReceivePush() bool {
	return d != nil && d.IsActive && d.PushToken != ""
}
