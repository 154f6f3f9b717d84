// Package validation holds the input checks every flow runs before touching
// the network.
package validation

import (
	"github.com/shopspring/decimal"

	domainErrors "sotrapay/internal/errors"
)

// ValidateAmount checks that amount is positive and representable exactly at
// the currency's minor unit. exponent is the number of minor-unit decimals.
func ValidateAmount(amount decimal.Decimal, exponent int32) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainErrors.ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(exponent)) {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

// ValidateMinimum enforces the platform fare floor.
func ValidateMinimum(amount, minimum decimal.Decimal) error {
	if amount.LessThan(minimum) {
		return domainErrors.ErrAmountBelowMinimum
	}
	return nil
}
