package rating

import (
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/utils/calc"
	"github.com/shopspring/decimal"
)

// SegmentBands partitions chargeable weight into D2C, B2B and FTL. D2CMaxKg
// is exclusive and B2BMaxKg inclusive.
type SegmentBands struct {
	D2CMaxKg decimal.Decimal
	B2BMaxKg decimal.Decimal
}

// Weights are the BALANCED composite coefficients for cost, speed and
// historical performance.
type Weights struct {
	Cost        float64
	Speed       float64
	Performance float64
}

type Config struct {
	Bands             SegmentBands
	VolumetricDivisor decimal.Decimal
	GSTPercent        decimal.Decimal
	Weights           Weights
	Carriers          []Carrier
}

func DefaultSegmentBands() SegmentBands {
	return SegmentBands{
		D2CMaxKg: decimal.NewFromInt(30),
		B2BMaxKg: decimal.NewFromInt(3000),
	}
}

func DefaultWeights() Weights {
	return Weights{Cost: 0.5, Speed: 0.3, Performance: 0.2}
}

// DefaultConfig returns the stock tables with an empty carrier catalog.
func DefaultConfig() Config {
	return Config{
		Bands:             DefaultSegmentBands(),
		VolumetricDivisor: decimal.NewFromInt(5000),
		GSTPercent:        calc.DefaultGSTPercent(),
		Weights:           DefaultWeights(),
	}
}

func (c Config) Validate() error {
	if !c.Bands.D2CMaxKg.IsPositive() || c.Bands.B2BMaxKg.LessThan(c.Bands.D2CMaxKg) {
		return fmt.Errorf("%w: segment bands must satisfy 0 < d2c_max (%s) <= b2b_max (%s)",
			ErrInvalidConfig, c.Bands.D2CMaxKg, c.Bands.B2BMaxKg)
	}
	if !c.VolumetricDivisor.IsPositive() {
		return fmt.Errorf("%w: volumetric divisor must be positive", ErrInvalidConfig)
	}
	if c.GSTPercent.IsNegative() {
		return fmt.Errorf("%w: gst percent must not be negative", ErrInvalidConfig)
	}
	w := c.Weights
	if w.Cost < 0 || w.Speed < 0 || w.Performance < 0 || w.Cost+w.Speed <= 0 {
		return fmt.Errorf("%w: allocation weights must be non-negative with cost+speed > 0", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Carriers))
	for _, carrier := range c.Carriers {
		if carrier.ID == "" {
			return fmt.Errorf("%w: carrier %q has no id", ErrInvalidConfig, carrier.Name)
		}
		if _, dup := seen[carrier.ID]; dup {
			return fmt.Errorf("%w: duplicate carrier id %q", ErrInvalidConfig, carrier.ID)
		}
		seen[carrier.ID] = struct{}{}
	}
	return nil
}
