package model

import (
	"time"

	"github.com/google/uuid"
)

// SMSLogModel is the GORM-specific struct for the 'sms_logs' table.
type SMSLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	To         string     `gorm:"column:recipient;type:varchar(32);not null"`
	Message    string     `gorm:"type:text;not null"`
	Status     string     `gorm:"type:varchar(16);not null"`
	ProviderID string     `gorm:"type:varchar(128)"`
	Error      string     `gorm:"type:text"`
	Mock       bool       `gorm:"not null;default:false"`
	SentAt     time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SMSLogModel) TableName() string {
	return "sms_logs"
}
