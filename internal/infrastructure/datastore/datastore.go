package datastore

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/config"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/memory"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/postgres"
)

// Open returns the account store selected by cfg.DataStoreType together with
// a function releasing its resources.
func Open(ctx context.Context, cfg *config.Config) (repository.AccountRepository, func(), error) {
	switch cfg.DataStoreType {
	case config.DataStorePrimary:
		pool, err := openPrimaryPool(ctx, cfg.DatabaseURL, cfg.Pool)
		if err != nil {
			return nil, nil, fmt.Errorf("primary store: %w", err)
		}
		return postgres.NewAccountRepo(pool), pool.Close, nil

	case config.DataStoreBackup:
		repo := memory.NewAccountRepo()
		if cfg.SeedFile != "" {
			if err := seed(ctx, repo, cfg.SeedFile); err != nil {
				return nil, nil, fmt.Errorf("backup store: %w", err)
			}
		}
		return repo, func() {}, nil

	default:
		return nil, nil, config.ErrInvalidDataStoreType
	}
}

func seed(ctx context.Context, repo *memory.AccountRepo, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = repo.Seed(ctx, f)
	return err
}

func openPrimaryPool(ctx context.Context, url string, sizing config.PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = sizing.MaxConns
	poolCfg.MinConns = sizing.MinConns
	poolCfg.MaxConnLifetime = sizing.MaxConnLifetime
	poolCfg.MaxConnIdleTime = sizing.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
