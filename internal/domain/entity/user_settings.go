package entity

import "time"

// Bounds for UserSettings.AutoDeleteLocationAfterHours.
const (
	MinLocationRetentionHours = 1
	MaxLocationRetentionHours = 30 * 24
)

// UserSettings are the per-user switches of the mobile app. Only a bcrypt hash of
// the SOS PIN is kept.
type UserSettings struct {
	ShakeToSOS                   bool
	SOSPinHash                   string
	AutoDeleteLocationAfterHours int
	NotificationSound            bool
	Vibration                    bool
}

// DefaultUserSettings is what a new account starts with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		AutoDeleteLocationAfterHours: 24,
		NotificationSound:            true,
		Vibration:                    true,
	}
}

// HasSOSPin reports whether a PIN has been set.
func (s UserSettings) HasSOSPin() bool {
	return s.SOSPinHash != ""
}

// LocationRetention is how long location history outlives the last report.
func (s UserSettings) LocationRetention() time.Duration {
	return time.Duration(s.AutoDeleteLocationAfterHours) * time.Hour
}

// SettingsPatch is a partial update. Nil fields are left as they are.
// SOSPin carries the plain PIN, an empty string clears it.
type SettingsPatch struct {
	ShakeToSOS                   *bool
	SOSPin                       *string
	AutoDeleteLocationAfterHours *int
	NotificationSound            *bool
	Vibration                    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *SettingsPatch) IsEmpty() bool {
	return p == nil || (p.ShakeToSOS == nil && p.SOSPin == nil &&
		p.AutoDeleteLocationAfterHours == nil && p.NotificationSound == nil && p.Vibration == nil)
}

// ApplyTo copies the present fields onto s. The PIN is left to the caller, which
// owns the hashing.
func (p *SettingsPatch) ApplyTo(s *UserSettings) {
	if p.ShakeToSOS != nil {
		s.ShakeToSOS = *p.ShakeToSOS
	}
	if p.AutoDeleteLocationAfterHours != nil {
		s.AutoDeleteLocationAfterHours = *p.AutoDeleteLocationAfterHours
	}
	if p.NotificationSound != nil {
		s.NotificationSound = *p.NotificationSound
	}
	if p.Vibration != nil {
		s.Vibration = *p.Vibration
	}
}
