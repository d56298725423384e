package rating

import "github.com/shopspring/decimal"

// Classify maps a chargeable weight onto exactly one segment.
func Classify(bands SegmentBands, chargeableKg decimal.Decimal) Segment {
	switch {
	case chargeableKg.LessThan(bands.D2CMaxKg):
		return SegmentD2C
	case chargeableKg.LessThanOrEqual(bands.B2BMaxKg):
		return SegmentB2B
	default:
		return SegmentFTL
	}
}

// VolumetricWeight returns L×W×H/divisor. ok is false when the dimensions are
// absent or any axis is not positive.
func VolumetricWeight(dims *Dimensions, divisor decimal.Decimal) (decimal.Decimal, bool) {
	if !dims.Valid() || !divisor.IsPositive() {
		return decimal.Zero, false
	}
	volume := dims.LengthCm.Mul(dims.WidthCm).Mul(dims.HeightCm)
	return volume.DivRound(divisor, 3), true
}

func ChargeableWeight(actualKg decimal.Decimal, dims *Dimensions, divisor decimal.Decimal) decimal.Decimal {
	volumetric, ok := VolumetricWeight(dims, divisor)
	if !ok {
		return actualKg
	}
	return decimal.Max(actualKg, volumetric)
}
