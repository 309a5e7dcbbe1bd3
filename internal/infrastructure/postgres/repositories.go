package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
)

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) GetAccount(ctx context.Context, accountNumber string) (*entity.Account, error) {
	var (
		balance string
		status  string
		allowed int16
	)
	err := r.pool.QueryRow(ctx,
		`SELECT balance::text, status, allowed_schemes FROM accounts WHERE account_number = $1`,
		accountNumber,
	).Scan(&balance, &status, &allowed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reconstructAccount(accountNumber, balance, status, allowed)
}

func (r *AccountRepo) UpdateAccount(ctx context.Context, account *entity.Account) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET balance = $1::numeric, updated_at = now() WHERE account_number = $2`,
		account.Balance().String(), account.AccountNumber(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func reconstructAccount(accountNumber, balance, status string, allowed int16) (*entity.Account, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("account %s: balance %q: %w", accountNumber, balance, err)
	}
	st, err := entity.ParseAccountStatus(status)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, err)
	}
	schemes := entity.AllowedPaymentSchemes(allowed)
	if allowed < 0 || !schemes.Valid() {
		return nil, fmt.Errorf("account %s: invalid allowed_schemes %d", accountNumber, allowed)
	}
	return entity.NewAccount(accountNumber, amount, st, schemes), nil
}
