package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PerformanceRepositoryImpl interface {
	Upsert(ctx context.Context, perf *models.CarrierPerformance) error
	OnTimePercentage(ctx context.Context, carrierID string) (*float64, error)
}

type performanceRepository struct {
	db *gorm.DB
}

var _ rating.PerformanceSource = (*performanceRepository)(nil)

func NewPerformanceRepository(db *gorm.DB) PerformanceRepositoryImpl {
	return &performanceRepository{db: db}
}

func (r *performanceRepository) Upsert(ctx context.Context, perf *models.CarrierPerformance) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "carrier_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"on_time_percentage", "shipments_tracked", "updated_at"}),
	}).Create(perf).Error
}

// OnTimePercentage returns nil when the carrier has no tracked shipments.
func (r *performanceRepository) OnTimePercentage(ctx context.Context, carrierID string) (*float64, error) {
	var perf models.CarrierPerformance
	err := r.db.WithContext(ctx).First(&perf, "carrier_code = ?", carrierID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query performance for %s: %w", carrierID, err)
	}
	if perf.ShipmentsTracked <= 0 {
		return nil, nil
	}
	score := perf.OnTimePercentage
	return &score, nil
}
