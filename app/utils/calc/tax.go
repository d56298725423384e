package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DefaultGSTPercent is the goods and services tax applied to freight charges.
func DefaultGSTPercent() decimal.Decimal {
	return decimal.NewFromInt(18)
}

func CalculateTax(baseTotal, taxPercent decimal.Decimal) decimal.Decimal {
	return RoundMoney(Percent(baseTotal, taxPercent))
}

func CalculateGrandTotal(components ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, components...)
}
