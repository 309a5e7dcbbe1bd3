package entity

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownAccountStatus = errors.New("unknown account status")

type AccountStatus int

const (
	StatusLive AccountStatus = iota
	StatusDisabled
	StatusInboundPaymentsOnly
)

func (s AccountStatus) String() string {
	switch s {
	case StatusLive:
		return "live"
	case StatusDisabled:
		return "disabled"
	case StatusInboundPaymentsOnly:
		return "inbound_payments_only"
	default:
		return "unknown"
	}
}

func ParseAccountStatus(raw string) (AccountStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "live":
		return StatusLive, nil
	case "disabled":
		return StatusDisabled, nil
	case "inbound_payments_only", "inboundpaymentsonly":
		return StatusInboundPaymentsOnly, nil
	default:
		return 0, ErrUnknownAccountStatus
	}
}

type Account struct {
	accountNumber  string
	balance        decimal.Decimal
	status         AccountStatus
	allowedSchemes AllowedPaymentSchemes
}

func NewAccount(
	accountNumber string,
	balance decimal.Decimal,
	status AccountStatus,
	allowed AllowedPaymentSchemes,
) *Account {
	return &Account{
		accountNumber:  accountNumber,
		balance:        balance,
		status:         status,
		allowedSchemes: allowed,
	}
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Status() AccountStatus {
	return a.status
}

func (a *Account) AllowedPaymentSchemes() AllowedPaymentSchemes {
	return a.allowedSchemes
}

// Debit subtracts amount from the balance. The balance is allowed to go negative.
func (a *Account) Debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

// Clone returns an independent copy, so stores can hand out accounts without
// sharing state with callers.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
