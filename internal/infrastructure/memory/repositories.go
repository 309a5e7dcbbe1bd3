package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
)

var ErrDuplicatedAccount = errors.New("account with this number already exists")

// AccountRepo is the backup account store. It keeps accounts in process and
// hands out copies, so a caller's debit is only visible after UpdateAccount.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *AccountRepo) GetAccount(_ context.Context, accountNumber string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountNumber]
	if !ok {
		return nil, nil
	}
	return acc.Clone(), nil
}

func (r *AccountRepo) UpdateAccount(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountNumber()]; !ok {
		return repository.ErrNotFound
	}
	r.accounts[account.AccountNumber()] = account.Clone()
	return nil
}

func (r *AccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountNumber()]; ok {
		return ErrDuplicatedAccount
	}
	r.accounts[account.AccountNumber()] = account.Clone()
	return nil
}

type seedAccount struct {
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	AllowedSchemes []string        `json:"allowed_schemes"`
}

// Seed loads a JSON array of accounts into the store.
func (r *AccountRepo) Seed(ctx context.Context, src io.Reader) (int, error) {
	var raw []seedAccount
	if err := json.NewDecoder(src).Decode(&raw); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	for i, s := range raw {
		if s.AccountNumber == "" {
			return i, fmt.Errorf("seed entry %d: account_number is required", i)
		}
		status, err := entity.ParseAccountStatus(s.Status)
		if err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
		allowed := entity.AllowNone
		for _, name := range s.AllowedSchemes {
			scheme, err := entity.ParsePaymentScheme(name)
			if err != nil {
				return i, fmt.Errorf("seed entry %d: %w", i, err)
			}
			allowed |= scheme.Flag()
		}
		if err := r.Create(ctx, entity.NewAccount(s.AccountNumber, s.Balance, status, allowed)); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return len(raw), nil
}
