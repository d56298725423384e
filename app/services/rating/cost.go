package rating

import (
	"github.com/Rakhulsr/go-logistics/app/utils/calc"
	"github.com/shopspring/decimal"
)

// CostBreakdown holds the named charges of a quote. Every component is
// already rounded to the currency unit, so Total is an exact sum.
type CostBreakdown struct {
	BaseRate         decimal.Decimal `json:"base_rate"`
	AdditionalWeight decimal.Decimal `json:"additional_weight"`
	FuelSurcharge    decimal.Decimal `json:"fuel_surcharge"`
	CODCharge        decimal.Decimal `json:"cod_charge"`
	FragileInsurance decimal.Decimal `json:"fragile_insurance"`
	GST              decimal.Decimal `json:"gst"`
	Other            decimal.Decimal `json:"other"`
}

type CostComponent struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Components lists the charges in billing order.
func (b CostBreakdown) Components() []CostComponent {
	return []CostComponent{
		{Name: "base_rate", Amount: b.BaseRate},
		{Name: "additional_weight", Amount: b.AdditionalWeight},
		{Name: "fuel_surcharge", Amount: b.FuelSurcharge},
		{Name: "cod_charge", Amount: b.CODCharge},
		{Name: "fragile_insurance", Amount: b.FragileInsurance},
		{Name: "gst", Amount: b.GST},
		{Name: "other", Amount: b.Other},
	}
}

func (b CostBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Components() {
		total = total.Add(c.Amount)
	}
	return total
}

func (b CostBreakdown) taxable() decimal.Decimal {
	return calc.CalculateGrandTotal(b.BaseRate, b.AdditionalWeight, b.FuelSurcharge, b.CODCharge, b.FragileInsurance)
}

// PriceRateCard applies the carrier surcharge schedule to one rate card.
// Negative inputs from bad data are floored at zero so no component can go
// below zero.
func PriceRateCard(carrier Carrier, card RateCard, req QuoteRequest, chargeableKg, gstPercent decimal.Decimal) CostBreakdown {
	var b CostBreakdown

	b.BaseRate = nonNegative(calc.RoundMoney(card.BaseRate))
	b.AdditionalWeight = nonNegative(calc.RoundMoney(additionalWeightCharge(card, chargeableKg)))
	b.FuelSurcharge = nonNegative(calc.RoundMoney(
		calc.Percent(b.BaseRate.Add(b.AdditionalWeight), carrier.FuelSurchargePercent)))

	if req.paymentMode() == PaymentCOD {
		b.CODCharge = nonNegative(calc.RoundMoney(calc.MaxDecimal(
			carrier.CODFlatFee,
			calc.Percent(req.DeclaredValue, carrier.CODPercent),
		)))
	} else {
		b.CODCharge = decimal.Zero
	}

	fragile := decimal.Zero
	if req.IsFragile {
		fragile = fragile.Add(carrier.FragileFee)
	}
	if req.DeclaredValue.GreaterThan(carrier.InsuranceThreshold) {
		fragile = fragile.Add(calc.Percent(req.DeclaredValue, carrier.InsurancePercent))
	}
	b.FragileInsurance = nonNegative(calc.RoundMoney(fragile))

	b.GST = nonNegative(calc.CalculateTax(b.taxable(), gstPercent))

	other := carrier.DocketFee.Add(carrier.PerPackageFee.Mul(decimal.NewFromInt(int64(req.packages()))))
	b.Other = nonNegative(calc.RoundMoney(other))

	return b
}

func additionalWeightCharge(card RateCard, chargeableKg decimal.Decimal) decimal.Decimal {
	excess := chargeableKg.Sub(card.IncludedWeightKg)
	if !excess.IsPositive() {
		return decimal.Zero
	}
	step := card.WeightStepKg
	if !step.IsPositive() {
		step = decimal.NewFromInt(1)
	}
	steps := excess.Div(step).Ceil()
	return steps.Mul(card.AdditionalRate)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
