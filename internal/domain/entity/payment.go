package entity

import "github.com/google/uuid"

type FailureReason string

const (
	ReasonNone              FailureReason = ""
	ReasonAccountNotFound   FailureReason = "account_not_found"
	ReasonSchemeNotAllowed  FailureReason = "scheme_not_allowed"
	ReasonInsufficientFunds FailureReason = "insufficient_funds"
	ReasonAccountNotLive    FailureReason = "account_not_live"
	ReasonUnknownScheme     FailureReason = "unknown_scheme"
)

type PaymentResult struct {
	Success   bool
	Reason    FailureReason
	// PaymentID is a correlation id for the caller only. It is not persisted
	// and cannot be used to look the payment up later.
	PaymentID uuid.UUID
}

func Succeeded() *PaymentResult {
	return &PaymentResult{Success: true, PaymentID: uuid.New()}
}

func Failed(reason FailureReason) *PaymentResult {
	return &PaymentResult{Success: false, Reason: reason}
}
