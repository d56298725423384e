package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 2, Thousand: ",", Decimal: "."}

// Rupee renders an amount for display. Unsupported types render as zero.
func Rupee(amount interface{}) string {
	var decAmount decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		decAmount = v
	case float64:
		decAmount = decimal.NewFromFloat(v)
	case int:
		decAmount = decimal.NewFromInt(int64(v))
	case int64:
		decAmount = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return rupee.FormatMoneyDecimal(decimal.Zero)
		}
		decAmount = parsed
	default:
		return rupee.FormatMoneyDecimal(decimal.Zero)
	}

	return rupee.FormatMoneyDecimal(decAmount)
}
