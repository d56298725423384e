package rating

import (
	"github.com/shopspring/decimal"
)

type Segment string

const (
	SegmentD2C Segment = "D2C"
	SegmentB2B Segment = "B2B"
	SegmentFTL Segment = "FTL"
)

type PaymentMode string

const (
	PaymentPrepaid PaymentMode = "PREPAID"
	PaymentCOD     PaymentMode = "COD"
)

// Strategy orders an already filtered set of quotes. It never changes which
// carriers qualify.
type Strategy string

const (
	StrategyBalanced      Strategy = "BALANCED"
	StrategyCheapestFirst Strategy = "CHEAPEST_FIRST"
	StrategyFastestFirst  Strategy = "FASTEST_FIRST"
	StrategyBestSLA       Strategy = "BEST_SLA"
)

// Zone is a distance classification letter, A through F.
type Zone string

type Dimensions struct {
	LengthCm decimal.Decimal `json:"length_cm"`
	WidthCm  decimal.Decimal `json:"width_cm"`
	HeightCm decimal.Decimal `json:"height_cm"`
}

// Valid reports whether every axis is positive. Invalid dimensions are
// ignored as a whole.
func (d *Dimensions) Valid() bool {
	return d != nil && d.LengthCm.IsPositive() && d.WidthCm.IsPositive() && d.HeightCm.IsPositive()
}

func (d *Dimensions) longest() decimal.Decimal {
	return decimal.Max(d.LengthCm, d.WidthCm, d.HeightCm)
}

type QuoteRequest struct {
	OriginCode      string          `json:"origin_code" validate:"required"`
	DestinationCode string          `json:"destination_code" validate:"required"`
	WeightKg        decimal.Decimal `json:"weight_kg" validate:"gt=0"`
	Dimensions      *Dimensions     `json:"dimensions,omitempty"`
	PaymentMode     PaymentMode     `json:"payment_mode" validate:"omitempty,oneof=PREPAID COD"`
	DeclaredValue   decimal.Decimal `json:"declared_value" validate:"gte=0"`
	PackageCount    int             `json:"package_count" validate:"gte=0"`
	IsFragile       bool            `json:"is_fragile"`
	Channel         string          `json:"channel,omitempty"`
	Strategy        Strategy        `json:"allocation_strategy" validate:"omitempty,oneof=BALANCED CHEAPEST_FIRST FASTEST_FIRST BEST_SLA"`
}

func (r QuoteRequest) packages() int {
	if r.PackageCount <= 0 {
		return 1
	}
	return r.PackageCount
}

func (r QuoteRequest) paymentMode() PaymentMode {
	if r.PaymentMode == "" {
		return PaymentPrepaid
	}
	return r.PaymentMode
}

func (r QuoteRequest) strategy() Strategy {
	if r.Strategy == "" {
		return StrategyBalanced
	}
	return r.Strategy
}

// Carrier is a transporter in the candidate catalog together with the
// surcharge schedule it applies on top of its rate cards.
type Carrier struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Segments             []Segment       `json:"segments"`
	Zones                []Zone          `json:"zones,omitempty"`
	MaxWeightKg          decimal.Decimal `json:"max_weight_kg"`
	MaxDimensionCm       decimal.Decimal `json:"max_dimension_cm"`
	FuelSurchargePercent decimal.Decimal `json:"fuel_surcharge_percent"`
	CODFlatFee           decimal.Decimal `json:"cod_flat_fee"`
	CODPercent           decimal.Decimal `json:"cod_percent"`
	FragileFee           decimal.Decimal `json:"fragile_fee"`
	InsurancePercent     decimal.Decimal `json:"insurance_percent"`
	InsuranceThreshold   decimal.Decimal `json:"insurance_threshold"`
	DocketFee            decimal.Decimal `json:"docket_fee"`
	PerPackageFee        decimal.Decimal `json:"per_package_fee"`
}

func (c Carrier) servesSegment(s Segment) bool {
	for _, seg := range c.Segments {
		if seg == s {
			return true
		}
	}
	return false
}

func (c Carrier) servesZone(z Zone) bool {
	if len(c.Zones) == 0 {
		return true
	}
	for _, zone := range c.Zones {
		if zone == z {
			return true
		}
	}
	return false
}

// RateCard is one weight tier of a carrier service for a segment and zone.
type RateCard struct {
	ID               string          `json:"id"`
	CarrierID        string          `json:"carrier_id"`
	ServiceType      string          `json:"service_type"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	IncludedWeightKg decimal.Decimal `json:"included_weight_kg"`
	AdditionalRate   decimal.Decimal `json:"additional_rate"`
	WeightStepKg     decimal.Decimal `json:"weight_step_kg"`
	MinDays          int             `json:"min_days"`
	MaxDays          int             `json:"max_days"`
}

type ZoneResolution struct {
	Zone        Zone
	Serviceable bool
}

type DeliveryEstimate struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

type CarrierQuote struct {
	CarrierID          string           `json:"carrier_id"`
	CarrierName        string           `json:"carrier_name"`
	RateCardID         string           `json:"rate_card_id"`
	ServiceType        string           `json:"service_type"`
	Zone               Zone             `json:"zone"`
	CostBreakdown      CostBreakdown    `json:"cost_breakdown"`
	TotalCost          decimal.Decimal  `json:"total_cost"`
	ChargeableWeightKg decimal.Decimal  `json:"chargeable_weight_kg"`
	EstimatedDelivery  DeliveryEstimate `json:"estimated_delivery"`
	PerformanceScore   *float64         `json:"performance_score"`
	AllocationScore    float64          `json:"allocation_score"`
	IsServiceable      bool             `json:"is_serviceable"`
}

// Exclusion explains why a candidate carrier produced no quote.
type Exclusion struct {
	CarrierID   string `json:"carrier_id"`
	CarrierName string `json:"carrier_name"`
	Reason      string `json:"reason"`
}

type QuoteResult struct {
	Segment            Segment          `json:"segment"`
	Zone               Zone             `json:"zone"`
	Strategy           Strategy         `json:"allocation_strategy"`
	ActualWeightKg     decimal.Decimal  `json:"actual_weight_kg"`
	VolumetricWeightKg *decimal.Decimal `json:"volumetric_weight_kg"`
	ChargeableWeightKg decimal.Decimal  `json:"chargeable_weight"`
	Quotes             []CarrierQuote   `json:"quotes"`
	Recommended        *CarrierQuote    `json:"recommended"`
	Alternatives       []CarrierQuote   `json:"alternatives"`
	Exclusions         []Exclusion      `json:"exclusions"`
	Message            string           `json:"message,omitempty"`
}

// NoServiceableOptions reports the valid-but-empty outcome where no carrier
// qualified for the shipment.
func (r *QuoteResult) NoServiceableOptions() bool {
	return len(r.Quotes) == 0
}
