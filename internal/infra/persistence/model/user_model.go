package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. IDs come from the identity provider.
type UserModel struct {
	ID        uuid.UUID                            `gorm:"type:uuid;primary_key"`
	Name      string                               `gorm:"type:varchar(100)"`
	Phone     *string                              `gorm:"type:varchar(32);uniqueIndex"`
	Settings  datatypes.JSONType[UserSettingsData] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSettingsData is the JSON document in users.settings.
type UserSettingsData struct {
	ShakeToSOS                   bool   `json:"shake_to_sos"`
	SOSPinHash                   string `json:"sos_pin_hash,omitempty"`
	AutoDeleteLocationAfterHours int    `json:"auto_delete_location_after_hours"`
	NotificationSound            bool   `json:"notification_sound"`
	Vibration                    bool   `json:"vibration"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
