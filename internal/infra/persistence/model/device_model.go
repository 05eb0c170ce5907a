package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps user_devices. One live row per (user_id, device_id); push fan-out reads
// active rows by user_id.
type UserDeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_devices_owner,priority:1"`
	DeviceID  string         `gorm:"type:varchar(255);not null;index:idx_user_devices_owner,priority:2"`
	FCMToken  string         `gorm:"type:text;not null;index:idx_user_devices_token,type:hash"`
	Platform  string         `gorm:"type:varchar(16);not null"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
