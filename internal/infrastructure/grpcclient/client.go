package grpcclient

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	grpcdelivery "github.com/Xausdorf/scheme-pay/internal/delivery/grpc"
	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
)

type Request struct {
	DebtorAccountNumber string
	Amount              decimal.Decimal
	PaymentScheme       entity.PaymentScheme
}

type Client struct {
	conn *grpc.ClientConn
}

func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) MakePayment(ctx context.Context, req Request) (*entity.PaymentResult, error) {
	in := &structpb.Struct{Fields: map[string]*structpb.Value{
		"debtor_account_number": structpb.NewStringValue(req.DebtorAccountNumber),
		"amount":                structpb.NewStringValue(req.Amount.String()),
		"payment_scheme":        structpb.NewStringValue(req.PaymentScheme.String()),
	}}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, grpcdelivery.MakePaymentMethod, in, out); err != nil {
		return nil, err
	}

	fields := out.GetFields()
	res := &entity.PaymentResult{
		Success: fields["success"].GetBoolValue(),
		Reason:  entity.FailureReason(fields["reason"].GetStringValue()),
	}
	if id := fields["payment_id"].GetStringValue(); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		res.PaymentID = parsed
	}
	return res, nil
}
