package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Bounds follow the accounts.balance column, NUMERIC(19, 4).
const (
	MaxAmountScale         = 4
	MaxAmountIntegerDigits = 15
)

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrAmountPrecision   = errors.New("amount has more than 4 decimal places")
	ErrAmountTooLarge    = errors.New("amount has more than 15 integer digits")
)

// ValidateAmount checks a requested payment amount. It only inspects the sign,
// exponent and coefficient digits, so it never rescales the value.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	exp := amount.Exponent()
	if exp < -MaxAmountScale {
		return ErrAmountPrecision
	}
	if exp > MaxAmountIntegerDigits || int(exp)+amount.NumDigits() > MaxAmountIntegerDigits {
		return ErrAmountTooLarge
	}
	return nil
}
