// Package amount converts between the ledger's wire representations of
// value (integer drop strings for the native asset, decimal strings for
// issued currencies) and exact decimal values. No float64 touches a
// balance path.
package amount

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrTooManyDecimalPlaces = errors.New("too many decimal places")
)

const (
	// DropsPerNative is the number of drops in one unit of the native asset
	DropsPerNative int64 = 1_000_000

	// DerivedPrecision is the maximum number of decimal places the
	// interpreter emits for derived values. Matches the ledger's reserve
	// precision conventions.
	DerivedPrecision int32 = 8
)

// numericPattern is the accepted decimal grammar: optional sign, digits,
// optional fractional part, optional exponent. A bare "." is rejected.
var numericPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Parse decodes a wire value into an exact decimal. When drops is true the
// value must be a whole number of smallest units; fractional drop values
// are rejected with ErrTooManyDecimalPlaces.
func Parse(v any, drops bool) (decimal.Decimal, error) {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = decimal.NewFromFloat(t).String()
	case int:
		s = decimal.NewFromInt(int64(t)).String()
	case int64:
		s = decimal.NewFromInt(t).String()
	case uint64:
		s = decimal.NewFromUint64(t).String()
	case decimal.Decimal:
		s = t.String()
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported value of type %T", ErrInvalidAmount, v)
	}

	if !numericPattern.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if drops && !d.IsInteger() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a whole drop count", ErrTooManyDecimalPlaces, s)
	}
	return d, nil
}

// DropsToNative converts a drop count to native-asset units (divide by 1e6).
func DropsToNative(drops decimal.Decimal) decimal.Decimal {
	return drops.Shift(-6)
}

// NativeToDrops converts native-asset units to a whole drop count.
// Rounds half-up with ties broken toward positive infinity, as used by
// fee and reserve computations.
func NativeToDrops(native decimal.Decimal) decimal.Decimal {
	return roundHalfUp(native.Shift(6))
}

// WithTransferRate returns value plus the issuer's transfer fee:
// value + value * ratePercent/100.
func WithTransferRate(value, ratePercent decimal.Decimal) decimal.Decimal {
	return value.Add(value.Mul(ratePercent).Shift(-2))
}

// roundHalfUp rounds to the nearest integer, ties toward +inf.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(decimal.New(5, -1)).Floor()
}

// Format renders a decimal in plain notation with trailing fractional
// zeros stripped, so "1.00" round-trips to "1". Never emits exponents.
func Format(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// FormatDerived renders an interpreter-derived value capped at
// DerivedPrecision decimal places.
func FormatDerived(d decimal.Decimal) string {
	return Format(d.Round(DerivedPrecision))
}
