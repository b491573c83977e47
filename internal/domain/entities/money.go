package entities

import (
	"pix_storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// ToCents converts a major-unit price (reais) to integer minor units (centavos).
//
// Arithmetic runs on decimal values, so repeated conversions of 180.00, 250.00 or
// 1120.00 always yield exactly 18000, 25000 and 112000. Fractions of a cent are
// rejected rather than rounded.
func ToCents(price decimal.Decimal) (int64, error) {
	if !price.IsPositive() {
		return 0, domain.NewValidationError("amount", "must be greater than zero")
	}
	if !price.Equal(price.Round(2)) {
		return 0, domain.NewValidationError("amount", "must not have fractions of a cent")
	}
	return price.Mul(centsPerUnit).IntPart(), nil
}

// FromCents is the inverse of ToCents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatBRL renders a price the way the storefront shows it, e.g. "R$ 360.00".
func FormatBRL(price decimal.Decimal) string {
	return "R$ " + price.StringFixed(2)
}
