package model

import (
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. It marshals as a JSON string with two
// fractional digits and accepts either a JSON number or a string.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MustMoney parses s and panics if it is not a decimal. Intended for constants and tests.
func MustMoney(s string) Money {
	return Money{Decimal: decimal.RequireFromString(s)}
}

// ParseMoney parses a decimal string.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return m.StringFixed(2)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// WholeCents reports whether the amount has no digits past the second decimal.
func (m Money) WholeCents() bool {
	return m.Decimal.Equal(m.Decimal.Round(2))
}

// Equal reports whether both amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}
