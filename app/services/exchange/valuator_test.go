package exchange

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/go-logistics/app/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakePricing struct {
	calls int
	value decimal.Decimal
	err   error
}

func (f *fakePricing) EstimateValue(context.Context, ValuationRequest) (decimal.Decimal, error) {
	f.calls++
	return f.value, f.err
}

func newValuator(t *testing.T, pricing PricingService) *Valuator {
	t.Helper()
	v, err := NewValuator(DefaultConfig(), pricing, nil)
	require.NoError(t, err)
	return v
}

func TestFallback_ClampExamples(t *testing.T) {
	v := newValuator(t, nil)

	res, err := v.Fallback(ValuationRequest{Brand: BrandAquaguard, AgeYears: dec("0.5"), Condition: ConditionExcellent})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), res.EstimatedValue)

	res, err = v.Fallback(ValuationRequest{Brand: BrandOther, AgeYears: dec("6"), Condition: ConditionPoor})
	require.NoError(t, err)
	assert.Equal(t, int64(500), res.EstimatedValue)
}

func TestFallback_Formula(t *testing.T) {
	v := newValuator(t, nil)

	tests := []struct {
		brand Brand
		age   string
		cond  Condition
		want  int64
	}{
		{BrandKent, "1.5", ConditionGood, 1224},
		{BrandPureit, "2.5", ConditionFair, 630},
		{BrandLivpure, "3", ConditionGood, 560},
		{BrandBlueStar, "1", ConditionFair, 663},
		{BrandAOSmith, "0", ConditionGood, 1280},
		{BrandOther, "0", ConditionExcellent, 1000},
	}
	for _, tt := range tests {
		t.Run(string(tt.brand)+"/"+tt.age+"/"+string(tt.cond), func(t *testing.T) {
			res, err := v.Fallback(ValuationRequest{Brand: tt.brand, AgeYears: dec(tt.age), Condition: tt.cond})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.EstimatedValue)
		})
	}
}

func TestFallback_RoundsHalfAwayFromZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrandBaseValues = map[Brand]int64{BrandKent: 1001}
	cfg.AgeBands = []AgeBand{{MinYears: dec("0"), Multiplier: dec("0.5")}}
	cfg.Floor, cfg.Ceiling = 0, 5000

	v, err := NewValuator(cfg, nil, nil)
	require.NoError(t, err)

	res, err := v.Fallback(ValuationRequest{Brand: BrandKent, AgeYears: dec("0"), Condition: ConditionExcellent})
	require.NoError(t, err)
	assert.Equal(t, int64(501), res.EstimatedValue)
}

func TestAgeMultiplier_BandBoundaries(t *testing.T) {
	v := newValuator(t, nil)

	tests := map[string]string{
		"0":    "1.0",
		"0.99": "1.0",
		"1":    "0.85",
		"1.5":  "0.85",
		"2":    "0.70",
		"2.99": "0.70",
		"3":    "0.50",
		"4.99": "0.50",
		"5":    "0.30",
		"25":   "0.30",
	}
	for age, want := range tests {
		t.Run(age, func(t *testing.T) {
			assert.True(t, dec(want).Equal(v.AgeMultiplier(dec(age))), "age %s got %s", age, v.AgeMultiplier(dec(age)))
		})
	}
}

func TestBaseValue(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.BrandBaseValues, BrandKent)
	v, err := NewValuator(cfg, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), v.BaseValue(BrandAquaguard))
	assert.Equal(t, int64(1000), v.BaseValue(BrandOther))
	assert.Equal(t, int64(1000), v.BaseValue(BrandKent))
}

func TestConditionMultiplier(t *testing.T) {
	v := newValuator(t, nil)
	assert.Equal(t, "1", v.ConditionMultiplier(ConditionExcellent).String())
	assert.Equal(t, "0.8", v.ConditionMultiplier(ConditionGood).String())
	assert.Equal(t, "0.6", v.ConditionMultiplier(ConditionFair).String())
	assert.Equal(t, "0.4", v.ConditionMultiplier(ConditionPoor).String())
}

func TestFallback_BoundedAndMonotonic(t *testing.T) {
	v := newValuator(t, nil)
	cfg := v.Config()
	brands := []Brand{BrandAquaguard, BrandKent, BrandPureit, BrandLivpure, BrandAOSmith, BrandBlueStar, BrandOther}
	ages := []string{"0", "0.5", "1", "1.5", "2", "2.5", "3", "4", "5", "8", "15"}

	value := func(b Brand, age string, c Condition) int64 {
		res, err := v.Fallback(ValuationRequest{Brand: b, AgeYears: dec(age), Condition: c})
		require.NoError(t, err)
		return res.EstimatedValue
	}

	for _, b := range brands {
		for _, c := range Conditions() {
			prev := int64(-1)
			for _, age := range ages {
				got := value(b, age, c)
				assert.GreaterOrEqual(t, got, cfg.Floor)
				assert.LessOrEqual(t, got, cfg.Ceiling)
				if prev >= 0 {
					assert.LessOrEqual(t, got, prev, "%s %s age %s", b, c, age)
				}
				prev = got
			}
		}
		for _, age := range ages {
			prev := int64(-1)
			for _, c := range Conditions() {
				got := value(b, age, c)
				if prev >= 0 {
					assert.LessOrEqual(t, got, prev, "%s age %s %s", b, age, c)
				}
				prev = got
			}
		}
	}
}

func TestEstimate_ValidationBeforePricing(t *testing.T) {
	tests := map[string]ValuationRequest{
		"unknown brand":     {Brand: "philips", AgeYears: dec("1"), Condition: ConditionGood},
		"missing brand":     {AgeYears: dec("1"), Condition: ConditionGood},
		"unknown condition": {Brand: BrandKent, AgeYears: dec("1"), Condition: "BROKEN"},
		"missing condition": {Brand: BrandKent, AgeYears: dec("1")},
		"negative age":      {Brand: BrandKent, AgeYears: dec("-0.5"), Condition: ConditionGood},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			pricing := &fakePricing{value: dec("1500")}
			v := newValuator(t, pricing)

			res, err := v.Estimate(context.Background(), req)
			assert.Nil(t, res)
			assert.True(t, validation.IsValidationError(err), "got %v", err)
			assert.Zero(t, pricing.calls)

			_, err = v.Fallback(req)
			assert.True(t, validation.IsValidationError(err))
		})
	}
}

func TestEstimate_PrefersPricingService(t *testing.T) {
	req := ValuationRequest{Brand: BrandKent, AgeYears: dec("1.5"), Condition: ConditionGood, PurifierType: "RO"}

	tests := []struct {
		name   string
		remote string
		want   int64
	}{
		{"within bounds", "1234.4", 1234},
		{"rounds half up", "1234.5", 1235},
		{"above ceiling", "4999", 2000},
		{"below floor", "12", 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing := &fakePricing{value: dec(tt.remote)}
			v := newValuator(t, pricing)

			res, err := v.Estimate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.EstimatedValue)
			assert.Equal(t, 1, pricing.calls)
		})
	}
}

func TestEstimate_FallsBackOnPricingError(t *testing.T) {
	req := ValuationRequest{Brand: BrandKent, AgeYears: dec("1.5"), Condition: ConditionGood}
	pricing := &fakePricing{err: errors.New("connection refused")}
	v := newValuator(t, pricing)

	res, err := v.Estimate(context.Background(), req)
	require.NoError(t, err)

	offline, err := v.Fallback(req)
	require.NoError(t, err)
	assert.Equal(t, offline, res)
	assert.Equal(t, int64(1224), res.EstimatedValue)
	assert.Equal(t, 1, pricing.calls)
}

func TestEstimate_WithoutPricingService(t *testing.T) {
	v := newValuator(t, nil)
	res, err := v.Estimate(context.Background(), ValuationRequest{Brand: BrandPureit, AgeYears: dec("2.5"), Condition: ConditionFair})
	require.NoError(t, err)
	assert.Equal(t, int64(630), res.EstimatedValue)
}

func TestNewValuator_RejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"brand below default":   func(c *Config) { c.BrandBaseValues[BrandKent] = 900 },
		"bands not from zero":   func(c *Config) { c.AgeBands[0].MinYears = dec("1") },
		"no bands":              func(c *Config) { c.AgeBands = nil },
		"bands out of order":    func(c *Config) { c.AgeBands[2].MinYears = dec("0.5") },
		"age multiplier rises":  func(c *Config) { c.AgeBands[3].Multiplier = dec("0.9") },
		"missing condition":     func(c *Config) { delete(c.ConditionMultipliers, ConditionFair) },
		"condition order":       func(c *Config) { c.ConditionMultipliers[ConditionPoor] = dec("0.9") },
		"floor above ceiling":   func(c *Config) { c.Floor = 3000 },
		"negative default base": func(c *Config) { c.DefaultBaseValue = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			_, err := NewValuator(cfg, nil, nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewValuator_CopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	v, err := NewValuator(cfg, nil, nil)
	require.NoError(t, err)

	cfg.BrandBaseValues[BrandAquaguard] = 10
	cfg.AgeBands[0].Multiplier = dec("0.1")
	assert.Equal(t, int64(2000), v.BaseValue(BrandAquaguard))
	assert.True(t, dec("1").Equal(v.AgeMultiplier(dec("0"))))
}
