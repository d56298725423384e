package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RateCard is a weight tier [MinWeightKg, MaxWeightKg) of one carrier service
// for a segment and zone. A zero MaxWeightKg leaves the tier open ended.
type RateCard struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Code        string `gorm:"size:100;not null;uniqueIndex" json:"code"`
	CarrierCode string `gorm:"size:50;not null;index:idx_rate_lookup" json:"carrier_code"`
	ServiceType string `gorm:"size:50;not null" json:"service_type"`
	Segment     string `gorm:"size:10;not null;index:idx_rate_lookup" json:"segment"`
	Zone        string `gorm:"size:2;not null;index:idx_rate_lookup" json:"zone"`

	MinWeightKg      decimal.Decimal `gorm:"type:decimal(10,3);default:0"`
	MaxWeightKg      decimal.Decimal `gorm:"type:decimal(10,3);default:0"`
	BaseRate         decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	IncludedWeightKg decimal.Decimal `gorm:"type:decimal(10,3);default:0"`
	AdditionalRate   decimal.Decimal `gorm:"type:decimal(16,2);default:0"`
	WeightStepKg     decimal.Decimal `gorm:"type:decimal(10,3);default:0"`
	MinDays          int             `gorm:"not null"`
	MaxDays          int             `gorm:"not null"`

	Active bool `gorm:"not null" json:"active"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (rc *RateCard) BeforeCreate(tx *gorm.DB) (err error) {
	if rc.ID == "" {
		rc.ID = uuid.New().String()
	}
	return
}

// Covers reports whether weight falls inside the tier.
func (rc *RateCard) Covers(weight decimal.Decimal) bool {
	if weight.LessThan(rc.MinWeightKg) {
		return false
	}
	return !rc.MaxWeightKg.IsPositive() || weight.LessThan(rc.MaxWeightKg)
}
