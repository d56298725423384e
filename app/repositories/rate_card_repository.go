package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RateCardRepositoryImpl interface {
	Create(ctx context.Context, card *models.RateCard) error
	GetByCarrier(ctx context.Context, carrierCode string) ([]models.RateCard, error)
	RateCards(ctx context.Context, carrierID string, segment rating.Segment, zone rating.Zone, chargeableKg decimal.Decimal) ([]rating.RateCard, error)
}

type rateCardRepository struct {
	db *gorm.DB
}

var _ rating.RateCardSource = (*rateCardRepository)(nil)

func NewRateCardRepository(db *gorm.DB) RateCardRepositoryImpl {
	return &rateCardRepository{db: db}
}

func (r *rateCardRepository) Create(ctx context.Context, card *models.RateCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *rateCardRepository) GetByCarrier(ctx context.Context, carrierCode string) ([]models.RateCard, error) {
	var cards []models.RateCard
	err := r.db.WithContext(ctx).
		Where("carrier_code = ?", carrierCode).
		Order("segment, zone, service_type, min_weight_kg").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// RateCards returns the active tiers of every service the carrier offers for
// segment and zone whose weight range covers chargeableKg.
func (r *rateCardRepository) RateCards(ctx context.Context, carrierID string, segment rating.Segment, zone rating.Zone, chargeableKg decimal.Decimal) ([]rating.RateCard, error) {
	var rows []models.RateCard
	err := r.db.WithContext(ctx).
		Where("carrier_code = ? AND segment = ? AND zone = ? AND active = ?", carrierID, string(segment), string(zone), true).
		Order("service_type, code").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query rate cards for %s: %w", carrierID, err)
	}

	cards := make([]rating.RateCard, 0, len(rows))
	for i := range rows {
		if !rows[i].Covers(chargeableKg) {
			continue
		}
		cards = append(cards, ToRatingRateCard(&rows[i]))
	}
	if len(cards) == 0 {
		return nil, rating.ErrNoRateCard
	}
	return cards, nil
}

func ToRatingRateCard(rc *models.RateCard) rating.RateCard {
	return rating.RateCard{
		ID:               rc.Code,
		CarrierID:        rc.CarrierCode,
		ServiceType:      rc.ServiceType,
		BaseRate:         rc.BaseRate,
		IncludedWeightKg: rc.IncludedWeightKg,
		AdditionalRate:   rc.AdditionalRate,
		WeightStepKg:     rc.WeightStepKg,
		MinDays:          rc.MinDays,
		MaxDays:          rc.MaxDays,
	}
}
