package migrations

import (
	"github.com/Rakhulsr/go-logistics/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Carrier{}, &models.RateCard{}, &models.ZoneRule{}, &models.CarrierPerformance{})
}
