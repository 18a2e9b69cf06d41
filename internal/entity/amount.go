package entity

import (
	"github.com/shopspring/decimal"

	"xrplview/internal/codec/amount"
)

// Amount is a currency-aware decimal value. Native-asset amounts carry the
// network's native symbol and no issuer; issued-currency amounts carry
// both a currency code and the issuing address.
type Amount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
	Value    string `json:"value"`
}

// IsNative reports whether the amount is denominated in the native asset.
func (a Amount) IsNative() bool {
	return a.Issuer == ""
}

// Decimal parses the value into an exact decimal.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return amount.Parse(a.Value, false)
}

// decodeAmount converts a wire amount value into a typed Amount: a bare
// string is a native drop count, an object is an issued-currency amount.
// Returns nil for malformed values; the error is local to this field.
func (e *base) decodeAmount(v any) *Amount {
	switch t := v.(type) {
	case string:
		drops, err := amount.Parse(t, true)
		if err != nil {
			return nil
		}
		return &Amount{
			Currency: e.net.NativeAsset,
			Value:    amount.FormatDerived(amount.DropsToNative(drops)),
		}
	case map[string]any:
		value, err := amount.Parse(t["value"], false)
		if err != nil {
			return nil
		}
		return &Amount{
			Currency: stringField(t, "currency"),
			Issuer:   stringField(t, "issuer"),
			Value:    amount.Format(value),
		}
	default:
		return nil
	}
}

// nativeAmount builds a native-asset Amount from a drop count.
func (e *base) nativeAmount(drops decimal.Decimal) *Amount {
	return &Amount{
		Currency: e.net.NativeAsset,
		Value:    amount.FormatDerived(amount.DropsToNative(drops)),
	}
}
