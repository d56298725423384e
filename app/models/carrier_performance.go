package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarrierPerformance struct {
	ID               string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CarrierCode      string  `gorm:"size:50;not null;uniqueIndex" json:"carrier_code"`
	OnTimePercentage float64 `gorm:"not null" json:"on_time_percentage"`
	ShipmentsTracked int     `gorm:"default:0" json:"shipments_tracked"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cp *CarrierPerformance) BeforeCreate(tx *gorm.DB) (err error) {
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	return
}
