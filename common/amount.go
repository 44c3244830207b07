package common

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ToBaseUnits converts a token denominated amount into raw ledger units.
// Example:
// - ToBaseUnits(1.5, 6) = 1500000
// - ToBaseUnits(0.1, 6) = 100000
// The conversion is exact; amounts with more fractional digits than decimals
// are rejected instead of being truncated.
func ToBaseUnits(amount decimal.Decimal, decimals uint64) (uint64, error) {
	if amount.Sign() < 0 {
		return 0, fmt.Errorf("amount %s is negative", amount)
	}
	scaled := amount.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amount, decimals)
	}
	if scaled.GreaterThan(maxUint64) {
		return 0, fmt.Errorf("amount %s overflows the ledger's uint64 range", amount)
	}
	return scaled.BigInt().Uint64(), nil
}

// FloatToBaseUnits is ToBaseUnits for amounts that are already parsed as
// float64. The float is first converted through its shortest decimal
// representation so 0.1 stays 0.1.
func FloatToBaseUnits(amount float64, decimals uint64) (uint64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount %v is not a finite number", amount)
	}
	return ToBaseUnits(decimal.NewFromFloat(amount), decimals)
}

// FromBaseUnits converts raw ledger units into an exact token amount.
// Example:
// - FromBaseUnits(1100, 3) = 1.1
// - FromBaseUnits(1100, 5) = 0.011
func FromBaseUnits(raw uint64, decimals uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals))
}

// BaseUnitsToFloat divides raw by 10^decimals in floating point. This is the
// precision users see when comparing and filling amounts.
func BaseUnitsToFloat(raw uint64, decimals uint64) float64 {
	return float64(raw) / math.Pow10(int(decimals))
}

// FormatBaseUnits renders raw units as a human readable amount with grouped
// thousands and without trailing fractional zeros, eg. 1234567890 with 6
// decimals is "1,234.56789".
func FormatBaseUnits(raw uint64, decimals uint64) string {
	fixed := FromBaseUnits(raw, decimals).StringFixed(int32(decimals))
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	whole, _ := new(big.Int).SetString(intPart, 10)
	p := message.NewPrinter(language.English)
	result := p.Sprintf("%d", whole.Uint64())
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart != "" {
		result += "." + fracPart
	}
	return result
}
