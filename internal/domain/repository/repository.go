package repository

import (
	"context"
	"errors"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

//go:generate mockgen -destination=../../usecase/payment/mocks/mock_repository.go -package=mocks . AccountRepository

// AccountRepository is the account store consumed by the payment use case.
// GetAccount returns (nil, nil) when no account has the given number.
type AccountRepository interface {
	GetAccount(ctx context.Context, accountNumber string) (*entity.Account, error)
	UpdateAccount(ctx context.Context, account *entity.Account) error
}
