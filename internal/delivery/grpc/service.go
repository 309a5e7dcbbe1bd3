package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName       = "payments.v1.PaymentService"
	MakePaymentMethod = "/" + ServiceName + "/MakePayment"
)

// PaymentServiceServer carries requests and results as google.protobuf.Struct
// messages with the fields documented on Handler.MakePayment.
type PaymentServiceServer interface {
	MakePayment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterPaymentServiceServer(s grpc.ServiceRegistrar, srv PaymentServiceServer) {
	s.RegisterService(&paymentServiceDesc, srv)
}

func makePaymentHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).MakePayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MakePaymentMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaymentServiceServer).MakePayment(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var paymentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaymentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MakePayment",
			Handler:    makePaymentHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "payments/v1/payment_service.proto",
}
