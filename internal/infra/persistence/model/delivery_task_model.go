package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryTaskModel mirrors the 'delivery_tasks' table. order_id is unique: one task per order.
type DeliveryTaskModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	RiderID             *uuid.UUID       `gorm:"type:uuid;index"`
	Status              string           `gorm:"type:varchar(30);not null;index"`
	PickupText          string           `gorm:"type:text"`
	PickupLatitude      *float64         `gorm:"type:decimal(10,8)"`
	PickupLongitude     *float64         `gorm:"type:decimal(11,8)"`
	DropoffText         string           `gorm:"type:text"`
	DropoffLatitude     *float64         `gorm:"type:decimal(10,8)"`
	DropoffLongitude    *float64         `gorm:"type:decimal(11,8)"`
	DistanceKm          *float64         `gorm:"type:decimal(8,3)"`
	DeliveryFee         decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	RiderEarning        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PlatformCommission  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	HandoffCodeHash     string           `gorm:"type:varchar(100)"`
	SpecialInstructions string           `gorm:"type:text"`
	AssignedAt          *time.Time
	ActualPickupTime    *time.Time
	ActualDeliveryTime  *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryTaskModel) TableName() string {
	return "delivery_tasks"
}
