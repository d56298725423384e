package repositories

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"gorm.io/gorm"
)

type ZoneRuleRepositoryImpl interface {
	Create(ctx context.Context, rule *models.ZoneRule) error
	ResolveZone(ctx context.Context, carrierID, originCode, destinationCode string) (rating.ZoneResolution, error)
}

type zoneRuleRepository struct {
	db *gorm.DB
}

var _ rating.ZoneResolver = (*zoneRuleRepository)(nil)

func NewZoneRuleRepository(db *gorm.DB) ZoneRuleRepositoryImpl {
	return &zoneRuleRepository{db: db}
}

func (r *zoneRuleRepository) Create(ctx context.Context, rule *models.ZoneRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// ResolveZone picks the matching rule with the longest combined prefix. Ties
// go to the longer origin prefix.
func (r *zoneRuleRepository) ResolveZone(ctx context.Context, carrierID, originCode, destinationCode string) (rating.ZoneResolution, error) {
	var rules []models.ZoneRule
	err := r.db.WithContext(ctx).
		Where("carrier_code = ?", carrierID).
		Order("origin_prefix DESC, destination_prefix DESC").
		Find(&rules).Error
	if err != nil {
		return rating.ZoneResolution{}, fmt.Errorf("query zone rules for %s: %w", carrierID, err)
	}

	var best *models.ZoneRule
	for i := range rules {
		rule := &rules[i]
		if !rule.Matches(originCode, destinationCode) {
			continue
		}
		if best == nil || rule.Specificity() > best.Specificity() ||
			(rule.Specificity() == best.Specificity() && len(rule.OriginPrefix) > len(best.OriginPrefix)) {
			best = rule
		}
	}
	if best == nil {
		return rating.ZoneResolution{}, fmt.Errorf("%w: %s %s->%s", rating.ErrZoneNotFound, carrierID, originCode, destinationCode)
	}

	return rating.ZoneResolution{Zone: rating.Zone(best.Zone), Serviceable: best.Serviceable}, nil
}
