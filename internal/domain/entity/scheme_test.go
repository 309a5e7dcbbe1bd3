package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
)

func TestAllowedPaymentSchemes_Allows(t *testing.T) {
	tests := []struct {
		name    string
		allowed entity.AllowedPaymentSchemes
		scheme  entity.PaymentScheme
		want    bool
	}{
		{"bacs only", entity.AllowBacs, entity.SchemeBacs, true},
		{"bacs and chaps", entity.AllowBacs | entity.AllowChaps, entity.SchemeBacs, true},
		{"all", entity.AllowBacs | entity.AllowFasterPayments | entity.AllowChaps, entity.SchemeChaps, true},
		{"none", entity.AllowNone, entity.SchemeBacs, false},
		{"other bit", entity.AllowFasterPayments, entity.SchemeBacs, false},
		{"chaps against fps", entity.AllowChaps, entity.SchemeFasterPayments, false},
		{"unknown scheme", entity.AllowBacs | entity.AllowFasterPayments | entity.AllowChaps, entity.PaymentScheme(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.allowed.Allows(tt.scheme))
		})
	}
}

func TestAllowedPaymentSchemes_String(t *testing.T) {
	assert.Equal(t, "none", entity.AllowNone.String())
	assert.Equal(t, "faster_payments|chaps", (entity.AllowChaps | entity.AllowFasterPayments).String())
	assert.True(t, (entity.AllowBacs | entity.AllowChaps).Valid())
	assert.False(t, entity.AllowedPaymentSchemes(1<<5).Valid())
}

func TestParsePaymentScheme(t *testing.T) {
	for raw, want := range map[string]entity.PaymentScheme{
		"Bacs":            entity.SchemeBacs,
		" chaps ":         entity.SchemeChaps,
		"FasterPayments":  entity.SchemeFasterPayments,
		"faster_payments": entity.SchemeFasterPayments,
	} {
		got, err := entity.ParsePaymentScheme(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := entity.ParsePaymentScheme("swift")
	require.ErrorIs(t, err, entity.ErrUnknownScheme)
}

func TestParseAccountStatus(t *testing.T) {
	s, err := entity.ParseAccountStatus("InboundPaymentsOnly")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInboundPaymentsOnly, s)

	_, err = entity.ParseAccountStatus("frozen")
	require.ErrorIs(t, err, entity.ErrUnknownAccountStatus)
}

func TestAccount_DebitAllowsNegativeBalance(t *testing.T) {
	acc := entity.NewAccount("acc-1", decimal.NewFromInt(500), entity.StatusLive, entity.AllowChaps)

	acc.Debit(decimal.NewFromInt(1000))

	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(-500)))
}

func TestAccount_CloneIsIndependent(t *testing.T) {
	acc := entity.NewAccount("acc-1", decimal.NewFromInt(500), entity.StatusLive, entity.AllowBacs)
	clone := acc.Clone()

	clone.Debit(decimal.NewFromInt(100))

	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(500)))
	assert.True(t, clone.Balance().Equal(decimal.NewFromInt(400)))
	assert.Equal(t, acc.AccountNumber(), clone.AccountNumber())
}
