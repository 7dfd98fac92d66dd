package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel mirrors the 'user_devices' table. A handset registers once per user
// and is switched off with is_active rather than deleted.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_devices_user_device,priority:1;index:idx_user_devices_user_active,priority:1"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_devices_user_device,priority:2"`
	PushToken string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_user_devices_user_active,priority:2"`
	UpdatedAt time.Time `gorm:"index:idx_user_devices_user_active,priority:3,sort:desc"`
	CreatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
