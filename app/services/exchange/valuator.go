// Package exchange values used water purifiers offered as trade-in credit.
// The formula path needs no network; an optional pricing service is tried
// first and its answer is held to the same clamp.
package exchange

import (
	"context"

	"github.com/Rakhulsr/go-logistics/app/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PricingService quotes a trade-in remotely.
type PricingService interface {
	EstimateValue(ctx context.Context, req ValuationRequest) (decimal.Decimal, error)
}

type Valuator struct {
	cfg      Config
	pricing  PricingService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewValuator validates cfg. pricing and logger may be nil.
func NewValuator(cfg Config, pricing PricingService, logger *zap.Logger) (*Valuator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Valuator{
		cfg:      cfg.clone(),
		pricing:  pricing,
		validate: validation.New(),
		logger:   logger.Named("exchange"),
	}, nil
}

func (v *Valuator) Config() Config {
	return v.cfg.clone()
}

// Estimate prefers the pricing service and falls back to the formula on any
// service error.
func (v *Valuator) Estimate(ctx context.Context, req ValuationRequest) (*ValuationResult, error) {
	if err := v.ValidateRequest(req); err != nil {
		return nil, err
	}

	if v.pricing != nil {
		value, err := v.pricing.EstimateValue(ctx, req)
		if err == nil {
			return &ValuationResult{EstimatedValue: v.clamp(value)}, nil
		}
		v.logger.Warn("pricing service failed, using formula",
			zap.String("brand", string(req.Brand)),
			zap.String("condition", string(req.Condition)),
			zap.Error(err))
	}

	return v.formula(req), nil
}

// Fallback computes the formula value without touching the pricing service.
func (v *Valuator) Fallback(req ValuationRequest) (*ValuationResult, error) {
	if err := v.ValidateRequest(req); err != nil {
		return nil, err
	}
	return v.formula(req), nil
}

func (v *Valuator) ValidateRequest(req ValuationRequest) error {
	return validation.Struct(v.validate, req)
}

func (v *Valuator) formula(req ValuationRequest) *ValuationResult {
	raw := decimal.NewFromInt(v.BaseValue(req.Brand)).
		Mul(v.AgeMultiplier(req.AgeYears)).
		Mul(v.ConditionMultiplier(req.Condition))

	return &ValuationResult{EstimatedValue: v.clamp(raw)}
}

// BaseValue returns the configured value for brand, or the default for
// "other" and brands without an entry.
func (v *Valuator) BaseValue(brand Brand) int64 {
	if value, ok := v.cfg.BrandBaseValues[brand]; ok {
		return value
	}
	return v.cfg.DefaultBaseValue
}

// AgeMultiplier returns the multiplier of the last band whose lower bound is
// at or below age. Negative ages fall into the first band.
func (v *Valuator) AgeMultiplier(age decimal.Decimal) decimal.Decimal {
	multiplier := v.cfg.AgeBands[0].Multiplier
	for _, band := range v.cfg.AgeBands[1:] {
		if age.LessThan(band.MinYears) {
			break
		}
		multiplier = band.Multiplier
	}
	return multiplier
}

func (v *Valuator) ConditionMultiplier(cond Condition) decimal.Decimal {
	return v.cfg.ConditionMultipliers[cond]
}

// clamp rounds half away from zero and bounds the value to [Floor, Ceiling].
func (v *Valuator) clamp(value decimal.Decimal) int64 {
	rounded := value.Round(0).IntPart()
	return min(max(rounded, v.cfg.Floor), v.cfg.Ceiling)
}
