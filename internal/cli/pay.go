package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/infrastructure/grpcclient"
)

type payFlags struct {
	account string
	amount  string
	scheme  string
	timeout time.Duration
}

func newPayCmd(opts *options) *cobra.Command {
	flags := &payFlags{}

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Debit an account through a payment scheme",
		Example: `  payctl pay --account 12345678 --amount 100.00 --scheme bacs
  payctl pay --addr core:50051 --account 12345678 --amount 5 --scheme faster_payments`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			client, err := grpcclient.NewClient(opts.addr)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			res, err := client.MakePayment(ctx, req)
			if err != nil {
				return err
			}

			if res.Success {
				fmt.Fprintf(cmd.OutOrStdout(), "payment accepted: %s\n", res.PaymentID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "payment rejected: %s\n", res.Reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.account, "account", "", "debtor account number")
	cmd.Flags().StringVar(&flags.amount, "amount", "", "amount to debit, e.g. 100.50")
	cmd.Flags().StringVar(&flags.scheme, "scheme", "", "payment scheme: bacs, faster_payments or chaps")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 10*time.Second, "request timeout")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("scheme")

	return cmd
}

func (f *payFlags) request() (grpcclient.Request, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return grpcclient.Request{}, fmt.Errorf("invalid amount %q: %w", f.amount, err)
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return grpcclient.Request{}, err
	}
	scheme, err := entity.ParsePaymentScheme(f.scheme)
	if err != nil {
		return grpcclient.Request{}, err
	}
	return grpcclient.Request{
		DebtorAccountNumber: f.account,
		Amount:              amount,
		PaymentScheme:       scheme,
	}, nil
}
