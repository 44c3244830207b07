package common

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		amount   string
		decimals uint64
		want     uint64
	}{
		{"1.5", 6, 1_500_000},
		{"0.1", 6, 100_000},
		{"5", 0, 5},
		{"0.000001", 6, 1},
		{"18446744073709551615", 0, math.MaxUint64},
	}
	for _, tt := range tests {
		got, err := ToBaseUnits(decimal.RequireFromString(tt.amount), tt.decimals)
		require.NoError(t, err, tt.amount)
		assert.Equal(t, tt.want, got, tt.amount)
	}
}

func TestToBaseUnitsRejects(t *testing.T) {
	_, err := ToBaseUnits(decimal.RequireFromString("0.0000001"), 6)
	assert.ErrorContains(t, err, "decimal places")

	_, err = ToBaseUnits(decimal.RequireFromString("-1"), 6)
	assert.ErrorContains(t, err, "negative")

	_, err = ToBaseUnits(decimal.RequireFromString("18446744073709551616"), 0)
	assert.ErrorContains(t, err, "overflows")
}

func TestFloatToBaseUnits(t *testing.T) {
	got, err := FloatToBaseUnits(0.1, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), got)

	got, err = FloatToBaseUnits(2.675, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(2675), got)

	_, err = FloatToBaseUnits(math.NaN(), 6)
	assert.Error(t, err)
	_, err = FloatToBaseUnits(math.Inf(1), 6)
	assert.Error(t, err)
}

func TestFromBaseUnits(t *testing.T) {
	assert.Equal(t, "1.1", FromBaseUnits(1100, 3).String())
	assert.Equal(t, "0.011", FromBaseUnits(1100, 5).String())
	assert.Equal(t, "1100", FromBaseUnits(1100, 0).String())
}

func TestBaseUnitsToFloat(t *testing.T) {
	assert.Equal(t, 5.0, BaseUnitsToFloat(5_000_000, 6))
	assert.Equal(t, 0.5, BaseUnitsToFloat(5, 1))
}

func TestFormatBaseUnits(t *testing.T) {
	assert.Equal(t, "1,234.56789", FormatBaseUnits(1_234_567_890, 6))
	assert.Equal(t, "5", FormatBaseUnits(5_000_000, 6))
	assert.Equal(t, "0.000001", FormatBaseUnits(1, 6))
	assert.Equal(t, "1,000,000", FormatBaseUnits(1_000_000, 0))
}
