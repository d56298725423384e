package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(f float64) *float64 { return &f }

type fakeZones struct {
	calls int
	zones map[string]ZoneResolution
	errs  map[string]error
}

func (f *fakeZones) ResolveZone(_ context.Context, carrierID, _, _ string) (ZoneResolution, error) {
	f.calls++
	if err := f.errs[carrierID]; err != nil {
		return ZoneResolution{}, err
	}
	res, ok := f.zones[carrierID]
	if !ok {
		return ZoneResolution{}, ErrZoneNotFound
	}
	return res, nil
}

type fakeRates struct {
	calls int
	cards map[string][]RateCard
	errs  map[string]error
}

func (f *fakeRates) RateCards(_ context.Context, carrierID string, _ Segment, _ Zone, _ decimal.Decimal) ([]RateCard, error) {
	f.calls++
	if err := f.errs[carrierID]; err != nil {
		return nil, err
	}
	cards, ok := f.cards[carrierID]
	if !ok {
		return nil, ErrNoRateCard
	}
	return cards, nil
}

type fakePerf struct {
	calls  int
	scores map[string]float64
	errs   map[string]error
}

func (f *fakePerf) OnTimePercentage(_ context.Context, carrierID string) (*float64, error) {
	f.calls++
	if err := f.errs[carrierID]; err != nil {
		return nil, err
	}
	score, ok := f.scores[carrierID]
	if !ok {
		return nil, nil
	}
	return &score, nil
}

var errLookup = errors.New("upstream unavailable")

func testCarriers() []Carrier {
	return []Carrier{
		{
			ID:                   "bluedart",
			Name:                 "BlueDart",
			Segments:             []Segment{SegmentD2C, SegmentB2B},
			MaxWeightKg:          dec("500"),
			MaxDimensionCm:       dec("150"),
			FuelSurchargePercent: dec("10"),
			CODFlatFee:           dec("40"),
			CODPercent:           dec("2"),
			FragileFee:           dec("50"),
			InsurancePercent:     dec("1"),
			InsuranceThreshold:   dec("5000"),
			DocketFee:            dec("20"),
			PerPackageFee:        dec("5"),
		},
		{
			ID:                   "delhivery",
			Name:                 "Delhivery",
			Segments:             []Segment{SegmentD2C, SegmentB2B, SegmentFTL},
			FuelSurchargePercent: dec("12.5"),
			CODFlatFee:           dec("35"),
			CODPercent:           dec("1.5"),
			FragileFee:           dec("30"),
			InsurancePercent:     dec("0.5"),
			InsuranceThreshold:   dec("10000"),
			DocketFee:            dec("10"),
		},
		{
			ID:                   "gati",
			Name:                 "Gati",
			Segments:             []Segment{SegmentB2B, SegmentFTL},
			Zones:                []Zone{"A", "B", "C"},
			FuelSurchargePercent: dec("8"),
			CODFlatFee:           dec("100"),
			DocketFee:            dec("100"),
		},
	}
}

func testRateCards() map[string][]RateCard {
	return map[string][]RateCard{
		"bluedart": {
			{ID: "bd-air", CarrierID: "bluedart", ServiceType: "AIR", BaseRate: dec("120"), IncludedWeightKg: dec("0.5"), AdditionalRate: dec("40"), WeightStepKg: dec("0.5"), MinDays: 1, MaxDays: 2},
			{ID: "bd-surface", CarrierID: "bluedart", ServiceType: "SURFACE", BaseRate: dec("70"), IncludedWeightKg: dec("0.5"), AdditionalRate: dec("25"), WeightStepKg: dec("0.5"), MinDays: 3, MaxDays: 5},
		},
		"delhivery": {
			{ID: "dl-surface", CarrierID: "delhivery", ServiceType: "SURFACE", BaseRate: dec("60"), IncludedWeightKg: dec("0.5"), AdditionalRate: dec("22"), WeightStepKg: dec("0.5"), MinDays: 2, MaxDays: 4},
		},
		"gati": {
			{ID: "gt-ltl", CarrierID: "gati", ServiceType: "LTL", BaseRate: dec("900"), IncludedWeightKg: dec("30"), AdditionalRate: dec("12"), MinDays: 4, MaxDays: 7},
		},
	}
}

type fixture struct {
	zones *fakeZones
	rates *fakeRates
	perf  *fakePerf
}

func newFixture() *fixture {
	return &fixture{
		zones: &fakeZones{zones: map[string]ZoneResolution{
			"bluedart":  {Zone: "B", Serviceable: true},
			"delhivery": {Zone: "B", Serviceable: true},
			"gati":      {Zone: "B", Serviceable: true},
		}},
		rates: &fakeRates{cards: testRateCards()},
		perf:  &fakePerf{scores: map[string]float64{"bluedart": 96, "gati": 88}},
	}
}

func (f *fixture) engine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Carriers = testCarriers()
	e, err := NewEngine(cfg, f.zones, f.rates, f.perf, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func (f *fixture) lookups() int {
	return f.zones.calls + f.rates.calls + f.perf.calls
}
