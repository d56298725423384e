// Package rating quotes shipments across a carrier catalog: it classifies the
// shipment segment, prices every serviceable rate card with a transparent
// breakdown and ranks the result by allocation strategy.
//
// The engine keeps no state between calls. Zone, rate card and performance
// data come from injected collaborators; a failing lookup only removes the
// affected carrier from the result.
package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rakhulsr/go-logistics/app/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ZoneResolver interface {
	ResolveZone(ctx context.Context, carrierID, originCode, destinationCode string) (ZoneResolution, error)
}

// RateCardSource returns the service tiers a carrier offers for the segment,
// zone and chargeable weight. An empty slice or ErrNoRateCard means no data.
type RateCardSource interface {
	RateCards(ctx context.Context, carrierID string, segment Segment, zone Zone, chargeableKg decimal.Decimal) ([]RateCard, error)
}

// PerformanceSource returns the historical on-time percentage (0-100) of a
// carrier, or nil when there is no history.
type PerformanceSource interface {
	OnTimePercentage(ctx context.Context, carrierID string) (*float64, error)
}

type Engine struct {
	cfg      Config
	zones    ZoneResolver
	rates    RateCardSource
	perf     PerformanceSource
	validate *validator.Validate
	logger   *zap.Logger
}

// NewEngine validates cfg and wires the collaborators. perf and logger may be
// nil.
func NewEngine(cfg Config, zones ZoneResolver, rates RateCardSource, perf PerformanceSource, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if zones == nil || rates == nil {
		return nil, fmt.Errorf("%w: zone resolver and rate card source are required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg.Carriers = append([]Carrier(nil), cfg.Carriers...)

	return &Engine{
		cfg:      cfg,
		zones:    zones,
		rates:    rates,
		perf:     perf,
		validate: validation.New(),
		logger:   logger.Named("rating"),
	}, nil
}

// Carriers returns a copy of the candidate catalog.
func (e *Engine) Carriers() []Carrier {
	return append([]Carrier(nil), e.cfg.Carriers...)
}

func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Carriers = e.Carriers()
	return cfg
}

// Quote prices req across the catalog. Invalid input fails with
// *validation.Error before any collaborator is called. When no carrier
// qualifies the result is empty with a Message and the error is nil.
func (e *Engine) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if err := e.ValidateRequest(req); err != nil {
		return nil, err
	}
	req.OriginCode = strings.TrimSpace(req.OriginCode)
	req.DestinationCode = strings.TrimSpace(req.DestinationCode)

	volumetric, hasVolumetric := VolumetricWeight(req.Dimensions, e.cfg.VolumetricDivisor)
	chargeable := ChargeableWeight(req.WeightKg, req.Dimensions, e.cfg.VolumetricDivisor)
	segment := Classify(e.cfg.Bands, chargeable)
	strategy := req.strategy()

	result := &QuoteResult{
		Segment:            segment,
		Strategy:           strategy,
		ActualWeightKg:     req.WeightKg,
		ChargeableWeightKg: chargeable,
		Quotes:             []CarrierQuote{},
		Alternatives:       []CarrierQuote{},
		Exclusions:         []Exclusion{},
	}
	if hasVolumetric {
		result.VolumetricWeightKg = &volumetric
	}

	var firstZone Zone
	for _, carrier := range e.cfg.Carriers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		quotes, zone, reason := e.quoteCarrier(ctx, carrier, req, segment, chargeable)
		if firstZone == "" && zone != "" {
			firstZone = zone
		}
		if reason != "" {
			result.Exclusions = append(result.Exclusions, Exclusion{
				CarrierID:   carrier.ID,
				CarrierName: carrier.Name,
				Reason:      reason,
			})
			continue
		}
		result.Quotes = append(result.Quotes, quotes...)
	}

	Score(result.Quotes, e.cfg.Weights)
	Rank(result.Quotes, strategy)

	if len(result.Quotes) == 0 {
		result.Zone = firstZone
		result.Message = fmt.Sprintf("No serviceable carriers for %s shipment from %s to %s (%d candidate(s) excluded).",
			segment, req.OriginCode, req.DestinationCode, len(result.Exclusions))
		e.logger.Info("no serviceable carriers",
			zap.String("origin", req.OriginCode),
			zap.String("destination", req.DestinationCode),
			zap.String("segment", string(segment)),
			zap.Int("excluded", len(result.Exclusions)))
		return result, nil
	}

	recommended := result.Quotes[0]
	result.Recommended = &recommended
	result.Alternatives = append(result.Alternatives, result.Quotes[1:]...)
	result.Zone = recommended.Zone

	e.logger.Debug("quoted shipment",
		zap.String("origin", req.OriginCode),
		zap.String("destination", req.DestinationCode),
		zap.String("segment", string(segment)),
		zap.String("strategy", string(strategy)),
		zap.Int("quotes", len(result.Quotes)),
		zap.String("recommended", recommended.CarrierID))

	return result, nil
}

// ValidateRequest runs the input checks Quote performs before any lookup.
func (e *Engine) ValidateRequest(req QuoteRequest) error {
	verr := &validation.Error{}
	if err := validation.Struct(e.validate, req); err != nil {
		if !errors.As(err, &verr) {
			return err
		}
	}
	if strings.TrimSpace(req.OriginCode) == "" {
		verr.Add("origin_code", "is required")
	}
	if strings.TrimSpace(req.DestinationCode) == "" {
		verr.Add("destination_code", "is required")
	}
	return verr.ErrOrNil()
}

// quoteCarrier returns the carrier's quotes, the zone it resolved (if any)
// and a non-empty reason when the carrier is excluded.
func (e *Engine) quoteCarrier(ctx context.Context, carrier Carrier, req QuoteRequest, segment Segment, chargeable decimal.Decimal) ([]CarrierQuote, Zone, string) {
	log := e.logger.With(zap.String("carrier_id", carrier.ID))

	if !carrier.servesSegment(segment) {
		return nil, "", fmt.Sprintf("does not serve %s segment", segment)
	}
	if carrier.MaxWeightKg.IsPositive() && chargeable.GreaterThan(carrier.MaxWeightKg) {
		return nil, "", fmt.Sprintf("chargeable weight %s kg exceeds carrier maximum %s kg", chargeable, carrier.MaxWeightKg)
	}
	if req.Dimensions.Valid() && carrier.MaxDimensionCm.IsPositive() && req.Dimensions.longest().GreaterThan(carrier.MaxDimensionCm) {
		return nil, "", fmt.Sprintf("package dimension exceeds carrier maximum %s cm", carrier.MaxDimensionCm)
	}

	resolution, err := e.zones.ResolveZone(ctx, carrier.ID, req.OriginCode, req.DestinationCode)
	if err != nil {
		log.Debug("zone resolution failed", zap.Error(err))
		return nil, "", "zone resolution unavailable"
	}
	if resolution.Zone == "" {
		return nil, "", "zone unresolved"
	}
	if !resolution.Serviceable || !carrier.servesZone(resolution.Zone) {
		return nil, resolution.Zone, fmt.Sprintf("zone %s not serviceable", resolution.Zone)
	}

	cards, err := e.rates.RateCards(ctx, carrier.ID, segment, resolution.Zone, chargeable)
	if err != nil {
		log.Debug("rate card lookup failed", zap.Error(err))
		return nil, resolution.Zone, "rate card unavailable"
	}
	if len(cards) == 0 {
		return nil, resolution.Zone, fmt.Sprintf("no rate card for %s zone %s", segment, resolution.Zone)
	}

	performance := e.performance(ctx, carrier.ID)

	quotes := make([]CarrierQuote, 0, len(cards))
	for _, card := range cards {
		if card.MinDays < 0 || card.MaxDays < card.MinDays {
			log.Debug("skipping rate card with inconsistent delivery days",
				zap.String("rate_card_id", card.ID),
				zap.Int("min_days", card.MinDays),
				zap.Int("max_days", card.MaxDays))
			continue
		}

		breakdown := PriceRateCard(carrier, card, req, chargeable, e.cfg.GSTPercent)
		quote := CarrierQuote{
			CarrierID:          carrier.ID,
			CarrierName:        carrier.Name,
			RateCardID:         card.ID,
			ServiceType:        card.ServiceType,
			Zone:               resolution.Zone,
			CostBreakdown:      breakdown,
			TotalCost:          breakdown.Total(),
			ChargeableWeightKg: chargeable,
			EstimatedDelivery:  DeliveryEstimate{MinDays: card.MinDays, MaxDays: card.MaxDays},
			IsServiceable:      true,
		}
		if performance != nil {
			score := *performance
			quote.PerformanceScore = &score
		}
		quotes = append(quotes, quote)
	}
	if len(quotes) == 0 {
		return nil, resolution.Zone, "rate cards carry inconsistent delivery estimates"
	}
	return quotes, resolution.Zone, ""
}

func (e *Engine) performance(ctx context.Context, carrierID string) *float64 {
	if e.perf == nil {
		return nil
	}
	score, err := e.perf.OnTimePercentage(ctx, carrierID)
	if err != nil {
		e.logger.Debug("performance lookup failed", zap.String("carrier_id", carrierID), zap.Error(err))
		return nil
	}
	return score
}
