package configs

import (
	"fmt"
	"os"

	"github.com/Rakhulsr/go-logistics/app/services/exchange"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Tables holds the engine configuration. The rating carrier catalog is not
// part of it; it comes from the database.
type Tables struct {
	Rating   rating.Config
	Exchange exchange.Config
}

type tablesFile struct {
	Rating   ratingTables   `yaml:"rating"`
	Exchange exchangeTables `yaml:"exchange"`
}

type ratingTables struct {
	SegmentBands *struct {
		D2CMaxKg float64 `yaml:"d2c_max_kg"`
		B2BMaxKg float64 `yaml:"b2b_max_kg"`
	} `yaml:"segment_bands"`
	VolumetricDivisor *float64 `yaml:"volumetric_divisor"`
	GSTPercent        *float64 `yaml:"gst_percent"`
	Weights           *struct {
		Cost        float64 `yaml:"cost"`
		Speed       float64 `yaml:"speed"`
		Performance float64 `yaml:"performance"`
	} `yaml:"weights"`
}

type exchangeTables struct {
	BrandBaseValues  map[string]int64 `yaml:"brand_base_values"`
	DefaultBaseValue *int64           `yaml:"default_base_value"`
	AgeBands         []struct {
		MinYears   float64 `yaml:"min_years"`
		Multiplier float64 `yaml:"multiplier"`
	} `yaml:"age_bands"`
	ConditionMultipliers map[string]float64 `yaml:"condition_multipliers"`
	Floor                *int64             `yaml:"floor"`
	Ceiling              *int64             `yaml:"ceiling"`
}

func DefaultTables() Tables {
	return Tables{
		Rating:   rating.DefaultConfig(),
		Exchange: exchange.DefaultConfig(),
	}
}

// LoadTables returns the built-in tables with any section present in the YAML
// file at path replacing its default. An empty path yields the defaults.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}

	var file tablesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Tables{}, fmt.Errorf("decode tables file %s: %w", path, err)
	}

	file.Rating.apply(&tables.Rating)
	file.Exchange.apply(&tables.Exchange)

	if err := tables.Rating.Validate(); err != nil {
		return Tables{}, fmt.Errorf("tables file %s: %w", path, err)
	}
	if err := tables.Exchange.Validate(); err != nil {
		return Tables{}, fmt.Errorf("tables file %s: %w", path, err)
	}
	return tables, nil
}

func (t ratingTables) apply(cfg *rating.Config) {
	if t.SegmentBands != nil {
		cfg.Bands = rating.SegmentBands{
			D2CMaxKg: decimal.NewFromFloat(t.SegmentBands.D2CMaxKg),
			B2BMaxKg: decimal.NewFromFloat(t.SegmentBands.B2BMaxKg),
		}
	}
	if t.VolumetricDivisor != nil {
		cfg.VolumetricDivisor = decimal.NewFromFloat(*t.VolumetricDivisor)
	}
	if t.GSTPercent != nil {
		cfg.GSTPercent = decimal.NewFromFloat(*t.GSTPercent)
	}
	if t.Weights != nil {
		cfg.Weights = rating.Weights{
			Cost:        t.Weights.Cost,
			Speed:       t.Weights.Speed,
			Performance: t.Weights.Performance,
		}
	}
}

func (t exchangeTables) apply(cfg *exchange.Config) {
	if len(t.BrandBaseValues) > 0 {
		cfg.BrandBaseValues = make(map[exchange.Brand]int64, len(t.BrandBaseValues))
		for brand, value := range t.BrandBaseValues {
			cfg.BrandBaseValues[exchange.Brand(brand)] = value
		}
	}
	if t.DefaultBaseValue != nil {
		cfg.DefaultBaseValue = *t.DefaultBaseValue
	}
	if len(t.AgeBands) > 0 {
		cfg.AgeBands = make([]exchange.AgeBand, 0, len(t.AgeBands))
		for _, band := range t.AgeBands {
			cfg.AgeBands = append(cfg.AgeBands, exchange.AgeBand{
				MinYears:   decimal.NewFromFloat(band.MinYears),
				Multiplier: decimal.NewFromFloat(band.Multiplier),
			})
		}
	}
	if len(t.ConditionMultipliers) > 0 {
		cfg.ConditionMultipliers = make(map[exchange.Condition]decimal.Decimal, len(t.ConditionMultipliers))
		for cond, m := range t.ConditionMultipliers {
			cfg.ConditionMultipliers[exchange.Condition(cond)] = decimal.NewFromFloat(m)
		}
	}
	if t.Floor != nil {
		cfg.Floor = *t.Floor
	}
	if t.Ceiling != nil {
		cfg.Ceiling = *t.Ceiling
	}
}
