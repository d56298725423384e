package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"gorm.io/gorm"
)

type CarrierRepositoryImpl interface {
	Create(ctx context.Context, carrier *models.Carrier) error
	GetByCode(ctx context.Context, code string) (*models.Carrier, error)
	GetActive(ctx context.Context) ([]models.Carrier, error)
	Catalog(ctx context.Context) ([]rating.Carrier, error)
}

type carrierRepository struct {
	db *gorm.DB
}

func NewCarrierRepository(db *gorm.DB) CarrierRepositoryImpl {
	return &carrierRepository{db: db}
}

func (r *carrierRepository) Create(ctx context.Context, carrier *models.Carrier) error {
	return r.db.WithContext(ctx).Create(carrier).Error
}

func (r *carrierRepository) GetByCode(ctx context.Context, code string) (*models.Carrier, error) {
	var carrier models.Carrier
	err := r.db.WithContext(ctx).First(&carrier, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carrier, nil
}

func (r *carrierRepository) GetActive(ctx context.Context) ([]models.Carrier, error) {
	var carriers []models.Carrier
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("code").Find(&carriers).Error
	if err != nil {
		return nil, err
	}
	return carriers, nil
}

// Catalog returns the active carriers in engine form, ordered by code.
func (r *carrierRepository) Catalog(ctx context.Context) ([]rating.Carrier, error) {
	carriers, err := r.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load carrier catalog: %w", err)
	}

	catalog := make([]rating.Carrier, 0, len(carriers))
	for i := range carriers {
		catalog = append(catalog, ToRatingCarrier(&carriers[i]))
	}
	return catalog, nil
}

func ToRatingCarrier(c *models.Carrier) rating.Carrier {
	out := rating.Carrier{
		ID:                   c.Code,
		Name:                 c.Name,
		MaxWeightKg:          c.MaxWeightKg,
		MaxDimensionCm:       c.MaxDimensionCm,
		FuelSurchargePercent: c.FuelSurchargePercent,
		CODFlatFee:           c.CODFlatFee,
		CODPercent:           c.CODPercent,
		FragileFee:           c.FragileFee,
		InsurancePercent:     c.InsurancePercent,
		InsuranceThreshold:   c.InsuranceThreshold,
		DocketFee:            c.DocketFee,
		PerPackageFee:        c.PerPackageFee,
	}
	for _, s := range c.SegmentList() {
		out.Segments = append(out.Segments, rating.Segment(s))
	}
	for _, z := range c.ZoneList() {
		out.Zones = append(out.Zones, rating.Zone(z))
	}
	return out
}
