package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_BandEdges(t *testing.T) {
	bands := DefaultSegmentBands()
	cases := []struct {
		weight string
		want   Segment
	}{
		{"0.001", SegmentD2C},
		{"29.99", SegmentD2C},
		{"30", SegmentB2B},
		{"30.01", SegmentB2B},
		{"2999.99", SegmentB2B},
		{"3000", SegmentB2B},
		{"3000.01", SegmentFTL},
		{"25000", SegmentFTL},
	}
	for _, tc := range cases {
		t.Run(tc.weight, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(bands, dec(tc.weight)))
		})
	}
}

func TestClassify_ConfiguredBands(t *testing.T) {
	bands := SegmentBands{D2CMaxKg: dec("10"), B2BMaxKg: dec("10")}
	assert.Equal(t, SegmentD2C, Classify(bands, dec("9.99")))
	assert.Equal(t, SegmentB2B, Classify(bands, dec("10")))
	assert.Equal(t, SegmentFTL, Classify(bands, dec("10.01")))
}

func TestVolumetricWeight(t *testing.T) {
	divisor := dec("5000")

	t.Run("cube", func(t *testing.T) {
		v, ok := VolumetricWeight(&Dimensions{LengthCm: dec("50"), WidthCm: dec("50"), HeightCm: dec("50")}, divisor)
		assert.True(t, ok)
		assert.True(t, dec("25").Equal(v), "got %s", v)
	})

	t.Run("nil dimensions", func(t *testing.T) {
		_, ok := VolumetricWeight(nil, divisor)
		assert.False(t, ok)
	})

	t.Run("any non-positive axis ignores the whole object", func(t *testing.T) {
		for _, dims := range []*Dimensions{
			{LengthCm: dec("0"), WidthCm: dec("50"), HeightCm: dec("50")},
			{LengthCm: dec("50"), WidthCm: dec("-1"), HeightCm: dec("50")},
			{LengthCm: dec("50"), WidthCm: dec("50")},
		} {
			_, ok := VolumetricWeight(dims, divisor)
			assert.False(t, ok)
		}
	})
}

func TestChargeableWeight(t *testing.T) {
	divisor := dec("5000")

	t.Run("volumetric dominates", func(t *testing.T) {
		got := ChargeableWeight(dec("1"), &Dimensions{LengthCm: dec("50"), WidthCm: dec("50"), HeightCm: dec("50")}, divisor)
		assert.True(t, dec("25").Equal(got), "got %s", got)
	})

	t.Run("actual dominates", func(t *testing.T) {
		got := ChargeableWeight(dec("40"), &Dimensions{LengthCm: dec("50"), WidthCm: dec("50"), HeightCm: dec("50")}, divisor)
		assert.True(t, dec("40").Equal(got), "got %s", got)
	})

	t.Run("invalid dimensions fall back to actual", func(t *testing.T) {
		got := ChargeableWeight(dec("1"), &Dimensions{LengthCm: dec("500"), WidthCm: dec("500"), HeightCm: dec("0")}, divisor)
		assert.True(t, dec("1").Equal(got), "got %s", got)
	})
}
