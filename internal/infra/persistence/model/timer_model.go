package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SafetyTimerModel is the GORM-specific struct for the 'safety_timers' table.
type SafetyTimerModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	DurationMinutes int            `gorm:"not null"`
	StartTime       time.Time      `gorm:"not null"`
	EndTime         time.Time      `gorm:"not null;index"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	Checkpoints     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Route           datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SafetyTimerModel) TableName() string {
	return "safety_timers"
}
