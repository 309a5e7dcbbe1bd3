package account

import (
	"context"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
)

type UseCase struct {
	accounts repository.AccountRepository
}

func NewUseCase(accounts repository.AccountRepository) *UseCase {
	return &UseCase{accounts: accounts}
}

func (uc *UseCase) Get(ctx context.Context, accountNumber string) (*entity.Account, error) {
	acc, err := uc.accounts.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, repository.ErrNotFound
	}
	return acc, nil
}
