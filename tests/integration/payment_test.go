package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/grpcclient"
)

// These tests need a server started with DATA_STORE_TYPE=primary against the
// same database. Set INTEGRATION_DATABASE_URL and INTEGRATION_GRPC_ADDR to run.
func setup(t *testing.T) (context.Context, *pgxpool.Pool, *grpcclient.Client) {
	t.Helper()

	dbURL := os.Getenv("INTEGRATION_DATABASE_URL")
	grpcAddr := os.Getenv("INTEGRATION_GRPC_ADDR")
	if dbURL == "" || grpcAddr == "" {
		t.Skip("INTEGRATION_DATABASE_URL and INTEGRATION_GRPC_ADDR are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	client, err := grpcclient.NewClient(grpcAddr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return ctx, pool, client
}

func createAccount(
	ctx context.Context,
	t *testing.T,
	pool *pgxpool.Pool,
	balance string,
	status entity.AccountStatus,
	allowed entity.AllowedPaymentSchemes,
) string {
	t.Helper()

	number := uuid.NewString()
	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (account_number, balance, status, allowed_schemes) VALUES ($1, $2::numeric, $3, $4)`,
		number, balance, status.String(), int16(allowed),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM accounts WHERE account_number = $1`, number)
	})
	return number
}

func balanceOf(ctx context.Context, t *testing.T, pool *pgxpool.Pool, number string) decimal.Decimal {
	t.Helper()

	var raw string
	err := pool.QueryRow(ctx, `SELECT balance::text FROM accounts WHERE account_number = $1`, number).Scan(&raw)
	require.NoError(t, err)
	return decimal.RequireFromString(raw)
}

func TestPrimaryStore_Scenarios(t *testing.T) {
	ctx, pool, client := setup(t)

	tests := []struct {
		name        string
		balance     string
		status      entity.AccountStatus
		allowed     entity.AllowedPaymentSchemes
		amount      string
		scheme      entity.PaymentScheme
		wantSuccess bool
		wantBalance string
	}{
		{"bacs debit", "500", entity.StatusLive, entity.AllowBacs, "100", entity.SchemeBacs, true, "400"},
		{"bacs not allowed", "500", entity.StatusLive, entity.AllowNone, "100", entity.SchemeBacs, false, "500"},
		{"fps insufficient", "100", entity.StatusLive, entity.AllowFasterPayments, "150", entity.SchemeFasterPayments, false, "100"},
		{"fps exact", "100", entity.StatusLive, entity.AllowFasterPayments, "100", entity.SchemeFasterPayments, true, "0"},
		{"chaps disabled", "500", entity.StatusDisabled, entity.AllowChaps, "100", entity.SchemeChaps, false, "500"},
		{"chaps overdraw", "500", entity.StatusLive, entity.AllowChaps, "1000", entity.SchemeChaps, true, "-500"},
		{"fractional", "10.25", entity.StatusLive, entity.AllowBacs, "0.75", entity.SchemeBacs, true, "9.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number := createAccount(ctx, t, pool, tt.balance, tt.status, tt.allowed)

			res, err := client.MakePayment(ctx, grpcclient.Request{
				DebtorAccountNumber: number,
				Amount:              decimal.RequireFromString(tt.amount),
				PaymentScheme:       tt.scheme,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantSuccess, res.Success)
			got := balanceOf(ctx, t, pool, number)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.wantBalance)), "balance %s", got)
		})
	}
}

func TestPrimaryStore_UnknownAccount(t *testing.T) {
	ctx, _, client := setup(t)

	res, err := client.MakePayment(ctx, grpcclient.Request{
		DebtorAccountNumber: uuid.NewString(),
		Amount:              decimal.NewFromInt(1),
		PaymentScheme:       entity.SchemeBacs,
	})

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, entity.ReasonAccountNotFound, res.Reason)
}
