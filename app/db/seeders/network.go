package seeders

import (
	"fmt"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/shopspring/decimal"
)

type Network struct {
	Carriers    []models.Carrier
	ZoneRules   []models.ZoneRule
	RateCards   []models.RateCard
	Performance []models.CarrierPerformance
}

var zones = []string{"A", "B", "C", "D", "E", "F"}

var zoneFactor = map[string]string{
	"A": "1.0", "B": "1.2", "C": "1.5", "D": "1.8", "E": "2.2", "F": "2.6",
}

var zoneExtraDays = map[string]int{
	"A": 0, "B": 0, "C": 1, "D": 1, "E": 2, "F": 3,
}

var metroPrefixes = []string{"110", "400", "560", "600", "700"}

type service struct {
	segment     string
	serviceType string
	minKg       string
	maxKg       string
	base        string
	includedKg  string
	additional  string
	stepKg      string
	minDays     int
	maxDays     int
}

type carrierPlan struct {
	carrier    models.Carrier
	services   []service
	unserviced map[string]bool
	onTime     float64
	tracked    int
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func plans() []carrierPlan {
	return []carrierPlan{
		{
			carrier: models.Carrier{
				Code:                 "bluedart",
				Name:                 "BlueDart",
				Segments:             "D2C,B2B",
				MaxWeightKg:          d("500"),
				MaxDimensionCm:       d("150"),
				FuelSurchargePercent: d("12"),
				CODFlatFee:           d("45"),
				CODPercent:           d("2"),
				FragileFee:           d("60"),
				InsurancePercent:     d("1"),
				InsuranceThreshold:   d("5000"),
				DocketFee:            d("25"),
				PerPackageFee:        d("5"),
			},
			services: []service{
				{"D2C", "AIR", "0", "30", "110", "0.5", "45", "0.5", 1, 2},
				{"D2C", "SURFACE", "0", "30", "65", "0.5", "25", "0.5", 3, 5},
				{"B2B", "SURFACE", "30", "200", "650", "30", "18", "1", 3, 6},
				{"B2B", "SURFACE", "200", "0", "3500", "200", "15", "1", 3, 6},
			},
			onTime:  94.5,
			tracked: 1200,
		},
		{
			carrier: models.Carrier{
				Code:                 "delhivery",
				Name:                 "Delhivery",
				Segments:             "D2C,B2B,FTL",
				FuelSurchargePercent: d("10"),
				CODFlatFee:           d("35"),
				CODPercent:           d("1.75"),
				FragileFee:           d("40"),
				InsurancePercent:     d("0.5"),
				InsuranceThreshold:   d("10000"),
				DocketFee:            d("15"),
				PerPackageFee:        d("3"),
			},
			services: []service{
				{"D2C", "EXPRESS", "0", "30", "95", "0.5", "38", "0.5", 1, 3},
				{"D2C", "SURFACE", "0", "30", "55", "0.5", "22", "0.5", 2, 4},
				{"B2B", "LTL", "30", "200", "520", "30", "15", "1", 3, 6},
				{"B2B", "LTL", "200", "0", "3050", "200", "12", "1", 3, 6},
				{"FTL", "FTL", "0", "0", "18000", "3000", "5", "100", 2, 5},
			},
			onTime:  89,
			tracked: 3400,
		},
		{
			carrier: models.Carrier{
				Code:                 "ecom_express",
				Name:                 "Ecom Express",
				Segments:             "D2C",
				Zones:                "A,B,C,D,E",
				MaxWeightKg:          d("30"),
				MaxDimensionCm:       d("120"),
				FuelSurchargePercent: d("8"),
				CODFlatFee:           d("30"),
				CODPercent:           d("1.5"),
				FragileFee:           d("35"),
				DocketFee:            d("10"),
			},
			services: []service{
				{"D2C", "SURFACE", "0", "30", "50", "0.5", "20", "0.5", 3, 6},
			},
			unserviced: map[string]bool{"F": true},
			onTime:     86.5,
			tracked:    800,
		},
		{
			carrier: models.Carrier{
				Code:                 "gati",
				Name:                 "Gati",
				Segments:             "B2B,FTL",
				Zones:                "A,B,C,D,E",
				FuelSurchargePercent: d("9"),
				CODFlatFee:           d("150"),
				CODPercent:           d("1"),
				FragileFee:           d("250"),
				InsurancePercent:     d("0.3"),
				InsuranceThreshold:   d("25000"),
				DocketFee:            d("100"),
				PerPackageFee:        d("10"),
			},
			services: []service{
				{"B2B", "LTL", "30", "200", "480", "30", "14", "1", 4, 7},
				{"B2B", "LTL", "200", "0", "2800", "200", "11", "1", 4, 7},
				{"FTL", "FTL", "0", "0", "16500", "3000", "4.5", "100", 3, 6},
			},
			unserviced: map[string]bool{"F": true},
		},
	}
}

// DemoNetwork builds four carriers with zone rules keyed on Indian PIN code
// prefixes, rate cards for every served segment and zone, and on-time
// history for all but gati.
func DemoNetwork() Network {
	var n Network
	for _, plan := range plans() {
		carrier := plan.carrier
		carrier.Active = true
		n.Carriers = append(n.Carriers, carrier)
		n.ZoneRules = append(n.ZoneRules, zoneRules(carrier.Code, plan.unserviced)...)
		n.RateCards = append(n.RateCards, rateCards(carrier.Code, plan.services)...)
		n.Performance = append(n.Performance, models.CarrierPerformance{
			CarrierCode:      carrier.Code,
			OnTimePercentage: plan.onTime,
			ShipmentsTracked: plan.tracked,
		})
	}
	return n
}

func zoneRules(carrierCode string, unserviced map[string]bool) []models.ZoneRule {
	rule := func(origin, destination, zone string) models.ZoneRule {
		return models.ZoneRule{
			CarrierCode:       carrierCode,
			OriginPrefix:      origin,
			DestinationPrefix: destination,
			Zone:              zone,
			Serviceable:       !unserviced[zone],
		}
	}

	rules := []models.ZoneRule{
		rule("", "", "D"),
		rule("", "78", "E"),
		rule("", "79", "E"),
		rule("", "19", "F"),
		rule("", "744", "F"),
	}
	for _, origin := range metroPrefixes {
		for _, destination := range metroPrefixes {
			zone := "C"
			if origin == destination {
				zone = "A"
			}
			rules = append(rules, rule(origin, destination, zone))
		}
		rules = append(rules, rule(origin, origin[:2], "B"))
	}
	return rules
}

func rateCards(carrierCode string, services []service) []models.RateCard {
	var cards []models.RateCard
	for _, svc := range services {
		for _, zone := range zones {
			factor := d(zoneFactor[zone])
			extra := zoneExtraDays[zone]
			cards = append(cards, models.RateCard{
				Code:             fmt.Sprintf("%s-%s-%s-%s-%s", carrierCode, svc.segment, svc.serviceType, zone, svc.minKg),
				CarrierCode:      carrierCode,
				ServiceType:      svc.serviceType,
				Segment:          svc.segment,
				Zone:             zone,
				MinWeightKg:      d(svc.minKg),
				MaxWeightKg:      d(svc.maxKg),
				BaseRate:         d(svc.base).Mul(factor).Round(2),
				IncludedWeightKg: d(svc.includedKg),
				AdditionalRate:   d(svc.additional).Mul(factor).Round(2),
				WeightStepKg:     d(svc.stepKg),
				MinDays:          svc.minDays + extra,
				MaxDays:          svc.maxDays + extra,
				Active:           true,
			})
		}
	}
	return cards
}
