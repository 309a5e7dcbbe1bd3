package account_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
	"github.com/Xausdorf/scheme-pay/internal/usecase/account"
	"github.com/Xausdorf/scheme-pay/internal/usecase/payment/mocks"
)

func TestAccountUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	uc := account.NewUseCase(repo)

	want := entity.NewAccount("a1", decimal.NewFromInt(10), entity.StatusLive, entity.AllowBacs)
	repo.EXPECT().GetAccount(gomock.Any(), "a1").Return(want, nil)
	repo.EXPECT().GetAccount(gomock.Any(), "a2").Return(nil, nil)

	got, err := uc.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = uc.Get(context.Background(), "a2")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
