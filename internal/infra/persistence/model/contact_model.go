package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContactModel is the GORM-specific struct for the 'emergency_contacts' table.
// Rows are hard deleted.
type EmergencyContactModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_contacts_user_priority,priority:1"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	Relationship string    `gorm:"type:varchar(50)"`
	Priority     int       `gorm:"not null;default:0;index:idx_contacts_user_priority,priority:2"`
	Verified     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}
