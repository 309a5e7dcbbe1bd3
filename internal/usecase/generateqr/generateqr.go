package generateqr

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/qrcode"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
)

var ErrSchemeNotAllowed = errors.New("account does not allow this payment scheme")

type Request struct {
	DebtorAccountNumber string
	Amount              decimal.Decimal
	PaymentScheme       entity.PaymentScheme
}

type UseCase struct {
	accounts  repository.AccountRepository
	generator qrcode.Generator
}

func NewUseCase(accounts repository.AccountRepository, generator qrcode.Generator) *UseCase {
	return &UseCase{accounts: accounts, generator: generator}
}

// Execute renders a QR code for a payment request. Only the account's
// capability for the scheme is checked; balance and status are left to the
// payment itself.
func (uc *UseCase) Execute(ctx context.Context, req Request) ([]byte, error) {
	account, err := uc.accounts.GetAccount(ctx, req.DebtorAccountNumber)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, repository.ErrNotFound
	}
	if !account.AllowedPaymentSchemes().Allows(req.PaymentScheme) {
		return nil, ErrSchemeNotAllowed
	}

	return uc.generator.Generate(qrcode.QRData{
		DebtorAccount: req.DebtorAccountNumber,
		Amount:        req.Amount.String(),
		PaymentScheme: req.PaymentScheme.String(),
	})
}
