package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
)

type Request struct {
	DebtorAccountNumber string
	Amount              decimal.Decimal
	PaymentScheme       entity.PaymentScheme
}

type UseCase struct {
	accounts repository.AccountRepository
}

func NewUseCase(accounts repository.AccountRepository) *UseCase {
	return &UseCase{accounts: accounts}
}

// MakePayment authorizes the request against the debtor account and, if every
// rule for the requested scheme passes, debits the account and persists it.
// Rule failures are reported in the result; only store errors are returned.
func (uc *UseCase) MakePayment(ctx context.Context, req Request) (*entity.PaymentResult, error) {
	account, err := uc.accounts.GetAccount(ctx, req.DebtorAccountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return entity.Failed(entity.ReasonAccountNotFound), nil
	}

	if reason := authorize(account, req); reason != entity.ReasonNone {
		return entity.Failed(reason), nil
	}

	account.Debit(req.Amount)
	if err := uc.accounts.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}

	return entity.Succeeded(), nil
}

// authorize applies the rule for the requested scheme only.
//
// The table is business-rule input awaiting confirmation with the payments
// domain owner: Bacs and FasterPayments do not look at account status, and
// Bacs and Chaps do not look at the balance. Keep it as is until confirmed.
func authorize(account *entity.Account, req Request) entity.FailureReason {
	switch req.PaymentScheme {
	case entity.SchemeBacs:
		if !account.AllowedPaymentSchemes().Allows(entity.SchemeBacs) {
			return entity.ReasonSchemeNotAllowed
		}

	case entity.SchemeFasterPayments:
		if !account.AllowedPaymentSchemes().Allows(entity.SchemeFasterPayments) {
			return entity.ReasonSchemeNotAllowed
		}
		if account.Balance().LessThan(req.Amount) {
			return entity.ReasonInsufficientFunds
		}

	case entity.SchemeChaps:
		if !account.AllowedPaymentSchemes().Allows(entity.SchemeChaps) {
			return entity.ReasonSchemeNotAllowed
		}
		if account.Status() != entity.StatusLive {
			return entity.ReasonAccountNotLive
		}

	default:
		// Fail closed: earlier versions of this service let unknown schemes through as a success.
		return entity.ReasonUnknownScheme
	}

	return entity.ReasonNone
}
