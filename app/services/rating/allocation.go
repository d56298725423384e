package rating

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Score fills AllocationScore for every quote:
//
//	cost·(1/normCost) + speed·(1/normDays) + performance·normPerf
//
// normCost and normDays are relative to the best value in the set, so the
// cheapest and fastest quotes contribute a full term. A quote without a
// performance record has the performance weight shared between the cost and
// speed terms in proportion to their sizes.
func Score(quotes []CarrierQuote, w Weights) {
	if len(quotes) == 0 {
		return
	}

	minCost := math.Inf(1)
	minDays := math.Inf(1)
	for _, q := range quotes {
		minCost = math.Min(minCost, q.TotalCost.InexactFloat64())
		minDays = math.Min(minDays, float64(transitDays(q)))
	}

	for i := range quotes {
		q := &quotes[i]

		costTerm := 1.0
		if cost := q.TotalCost.InexactFloat64(); cost > minCost {
			costTerm = minCost / cost
		}
		speedTerm := minDays / float64(transitDays(*q))

		wCost, wSpeed, wPerf := w.Cost, w.Speed, w.Performance
		perfTerm := 0.0
		if q.PerformanceScore != nil {
			perfTerm = clamp01(*q.PerformanceScore / 100)
		} else {
			share := wCost + wSpeed
			wCost += wPerf * wCost / share
			wSpeed += wPerf * wSpeed / share
			wPerf = 0
		}

		q.AllocationScore = round4(wCost*costTerm + wSpeed*speedTerm + wPerf*perfTerm)
	}
}

// Rank sorts quotes in place according to strategy. Every ordering ends in
// carrier name and rate card id so identical input yields identical output.
func Rank(quotes []CarrierQuote, strategy Strategy) {
	var primary func(a, b CarrierQuote) int

	switch strategy {
	case StrategyCheapestFirst:
		primary = func(a, b CarrierQuote) int {
			return cmp.Or(
				a.TotalCost.Cmp(b.TotalCost),
				cmp.Compare(a.EstimatedDelivery.MinDays, b.EstimatedDelivery.MinDays),
				cmp.Compare(a.EstimatedDelivery.MaxDays, b.EstimatedDelivery.MaxDays),
			)
		}
	case StrategyFastestFirst:
		primary = func(a, b CarrierQuote) int {
			return cmp.Or(
				cmp.Compare(a.EstimatedDelivery.MinDays, b.EstimatedDelivery.MinDays),
				a.TotalCost.Cmp(b.TotalCost),
			)
		}
	case StrategyBestSLA:
		primary = func(a, b CarrierQuote) int {
			return cmp.Or(
				comparePerformanceDesc(a.PerformanceScore, b.PerformanceScore),
				a.TotalCost.Cmp(b.TotalCost),
			)
		}
	default:
		primary = func(a, b CarrierQuote) int {
			return cmp.Or(
				cmp.Compare(b.AllocationScore, a.AllocationScore),
				a.TotalCost.Cmp(b.TotalCost),
			)
		}
	}

	slices.SortStableFunc(quotes, func(a, b CarrierQuote) int {
		return cmp.Or(
			primary(a, b),
			strings.Compare(a.CarrierName, b.CarrierName),
			strings.Compare(a.CarrierID, b.CarrierID),
			strings.Compare(a.RateCardID, b.RateCardID),
		)
	})
}

// comparePerformanceDesc orders higher scores first and unknown scores last.
func comparePerformanceDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}

func transitDays(q CarrierQuote) int {
	return max(q.EstimatedDelivery.MinDays, 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
