package grpc

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/usecase/payment"
)

type Handler struct {
	paymentUC *payment.UseCase
	logger    *slog.Logger
}

func NewHandler(paymentUC *payment.UseCase, logger *slog.Logger) *Handler {
	return &Handler{paymentUC: paymentUC, logger: logger}
}

// MakePayment expects debtor_account_number, amount (decimal string) and
// payment_scheme, and answers with success, reason and payment_id.
func (h *Handler) MakePayment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	debtor := fields["debtor_account_number"].GetStringValue()
	if debtor == "" {
		return nil, status.Error(codes.InvalidArgument, "debtor_account_number is required")
	}

	amount, err := decimal.NewFromString(fields["amount"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "amount must be a decimal string")
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	scheme, err := entity.ParsePaymentScheme(fields["payment_scheme"].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid payment_scheme")
	}

	res, err := h.paymentUC.MakePayment(ctx, payment.Request{
		DebtorAccountNumber: debtor,
		Amount:              amount,
		PaymentScheme:       scheme,
	})
	if err != nil {
		h.logger.Error("make payment failed", "account", debtor, "scheme", scheme.String(), "error", err)
		return nil, status.Errorf(codes.Internal, "payment failed: %v", err)
	}

	return encodeResult(res), nil
}

func encodeResult(res *entity.PaymentResult) *structpb.Struct {
	paymentID := ""
	if res.Success {
		paymentID = res.PaymentID.String()
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"success":    structpb.NewBoolValue(res.Success),
		"reason":     structpb.NewStringValue(string(res.Reason)),
		"payment_id": structpb.NewStringValue(paymentID),
	}}
}
