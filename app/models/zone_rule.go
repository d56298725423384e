package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ZoneRule maps origin and destination postal-code prefixes to a zone for a
// carrier. An empty prefix matches any code.
type ZoneRule struct {
	ID                string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CarrierCode       string `gorm:"size:50;not null;uniqueIndex:idx_zone_rule_key" json:"carrier_code"`
	OriginPrefix      string `gorm:"size:20;uniqueIndex:idx_zone_rule_key" json:"origin_prefix"`
	DestinationPrefix string `gorm:"size:20;uniqueIndex:idx_zone_rule_key" json:"destination_prefix"`
	Zone              string `gorm:"size:2;not null" json:"zone"`
	Serviceable       bool   `gorm:"not null" json:"serviceable"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (zr *ZoneRule) BeforeCreate(tx *gorm.DB) (err error) {
	if zr.ID == "" {
		zr.ID = uuid.New().String()
	}
	return
}

func (zr *ZoneRule) Matches(origin, destination string) bool {
	return strings.HasPrefix(origin, zr.OriginPrefix) && strings.HasPrefix(destination, zr.DestinationPrefix)
}

// Specificity ranks matching rules; the longest combined prefix wins.
func (zr *ZoneRule) Specificity() int {
	return len(zr.OriginPrefix) + len(zr.DestinationPrefix)
}
