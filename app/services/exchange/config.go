package exchange

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

var ErrInvalidConfig = errors.New("invalid exchange configuration")

// AgeBand applies Multiplier to ages at or above MinYears, up to the next
// band's lower bound.
type AgeBand struct {
	MinYears   decimal.Decimal
	Multiplier decimal.Decimal
}

type Config struct {
	BrandBaseValues      map[Brand]int64
	DefaultBaseValue     int64
	AgeBands             []AgeBand
	ConditionMultipliers map[Condition]decimal.Decimal
	Floor                int64
	Ceiling              int64
}

func DefaultBrandBaseValues() map[Brand]int64 {
	return map[Brand]int64{
		BrandAquaguard: 2000,
		BrandKent:      1800,
		BrandAOSmith:   1600,
		BrandPureit:    1500,
		BrandLivpure:   1400,
		BrandBlueStar:  1300,
	}
}

func DefaultAgeBands() []AgeBand {
	band := func(years, mult string) AgeBand {
		return AgeBand{MinYears: decimal.RequireFromString(years), Multiplier: decimal.RequireFromString(mult)}
	}
	return []AgeBand{
		band("0", "1.0"),
		band("1", "0.85"),
		band("2", "0.70"),
		band("3", "0.50"),
		band("5", "0.30"),
	}
}

func DefaultConditionMultipliers() map[Condition]decimal.Decimal {
	return map[Condition]decimal.Decimal{
		ConditionExcellent: decimal.RequireFromString("1.0"),
		ConditionGood:      decimal.RequireFromString("0.8"),
		ConditionFair:      decimal.RequireFromString("0.6"),
		ConditionPoor:      decimal.RequireFromString("0.4"),
	}
}

func DefaultConfig() Config {
	return Config{
		BrandBaseValues:      DefaultBrandBaseValues(),
		DefaultBaseValue:     1000,
		AgeBands:             DefaultAgeBands(),
		ConditionMultipliers: DefaultConditionMultipliers(),
		Floor:                500,
		Ceiling:              2000,
	}
}

func (c Config) Validate() error {
	if c.DefaultBaseValue < 0 {
		return fmt.Errorf("%w: default base value must not be negative", ErrInvalidConfig)
	}
	for brand, value := range c.BrandBaseValues {
		if value <= c.DefaultBaseValue {
			return fmt.Errorf("%w: base value of %s (%d) must exceed the default (%d)",
				ErrInvalidConfig, brand, value, c.DefaultBaseValue)
		}
	}

	if len(c.AgeBands) == 0 || !c.AgeBands[0].MinYears.IsZero() {
		return fmt.Errorf("%w: age bands must start at 0 years", ErrInvalidConfig)
	}
	for i, band := range c.AgeBands {
		if band.Multiplier.IsNegative() {
			return fmt.Errorf("%w: age multiplier for %s years is negative", ErrInvalidConfig, band.MinYears)
		}
		if i == 0 {
			continue
		}
		prev := c.AgeBands[i-1]
		if !band.MinYears.GreaterThan(prev.MinYears) {
			return fmt.Errorf("%w: age bands must be strictly ascending", ErrInvalidConfig)
		}
		if band.Multiplier.GreaterThan(prev.Multiplier) {
			return fmt.Errorf("%w: age multipliers must not increase with age", ErrInvalidConfig)
		}
	}

	var prev *decimal.Decimal
	for _, cond := range Conditions() {
		m, ok := c.ConditionMultipliers[cond]
		if !ok {
			return fmt.Errorf("%w: missing multiplier for condition %s", ErrInvalidConfig, cond)
		}
		if m.IsNegative() || (prev != nil && m.GreaterThan(*prev)) {
			return fmt.Errorf("%w: condition multipliers must be non-negative and non-increasing", ErrInvalidConfig)
		}
		prev = &m
	}

	if c.Floor < 0 || c.Floor > c.Ceiling {
		return fmt.Errorf("%w: clamp must satisfy 0 <= floor (%d) <= ceiling (%d)", ErrInvalidConfig, c.Floor, c.Ceiling)
	}
	return nil
}

func (c Config) clone() Config {
	out := c
	out.BrandBaseValues = make(map[Brand]int64, len(c.BrandBaseValues))
	for k, v := range c.BrandBaseValues {
		out.BrandBaseValues[k] = v
	}
	out.ConditionMultipliers = make(map[Condition]decimal.Decimal, len(c.ConditionMultipliers))
	for k, v := range c.ConditionMultipliers {
		out.ConditionMultipliers[k] = v
	}
	out.AgeBands = slices.Clone(c.AgeBands)
	return out
}
