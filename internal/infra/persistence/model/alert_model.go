package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID                uuid.UUID                      `gorm:"type:uuid;primary_key"`
	UserID            uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Type              string                         `gorm:"type:varchar(16);not null"`
	Status            string                         `gorm:"type:varchar(16);not null;index"`
	Latitude          float64                        `gorm:"type:double precision;not null"`
	Longitude         float64                        `gorm:"type:double precision;not null"`
	Accuracy          *float64                       `gorm:"type:double precision"`
	LocationTimestamp time.Time                      `gorm:"not null"`
	ContactsNotified  datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null"`
	Timestamp         time.Time                      `gorm:"not null;index"`
	ResolvedAt        *time.Time
	ResolvedBy        *uuid.UUID `gorm:"type:uuid"`
	Notes             *string    `gorm:"type:text"`
	UpdatedAt         time.Time

	Notifications []*AlertNotificationModel `gorm:"foreignKey:AlertID"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertNotificationModel is one row of the append-only 'alert_notifications' table.
type AlertNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactID uuid.UUID `gorm:"type:uuid;not null"`
	Method    string    `gorm:"type:varchar(8);not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	Message   string    `gorm:"type:text;not null"`
	Error     string    `gorm:"type:text"`
	SentAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertNotificationModel) TableName() string {
	return "alert_notifications"
}
