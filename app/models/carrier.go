package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Carrier struct {
	ID   string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`

	// Segments and Zones are comma separated. An empty Zones list means the
	// carrier covers every zone.
	Segments string `gorm:"size:50;not null" json:"segments"`
	Zones    string `gorm:"size:50" json:"zones"`

	MaxWeightKg          decimal.Decimal `gorm:"type:decimal(10,3);default:0"`
	MaxDimensionCm       decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	FuelSurchargePercent decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	CODFlatFee           decimal.Decimal `gorm:"type:decimal(16,2);default:0"`
	CODPercent           decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	FragileFee           decimal.Decimal `gorm:"type:decimal(16,2);default:0"`
	InsurancePercent     decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	InsuranceThreshold   decimal.Decimal `gorm:"type:decimal(16,2);default:0"`
	DocketFee            decimal.Decimal `gorm:"type:decimal(16,2);default:0"`
	PerPackageFee        decimal.Decimal `gorm:"type:decimal(16,2);default:0"`

	Active bool `gorm:"not null" json:"active"`

	RateCards []RateCard `gorm:"foreignKey:CarrierCode;references:Code"`
	ZoneRules []ZoneRule `gorm:"foreignKey:CarrierCode;references:Code"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (c *Carrier) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (c *Carrier) SegmentList() []string { return splitList(c.Segments) }

func (c *Carrier) ZoneList() []string { return splitList(c.Zones) }

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
