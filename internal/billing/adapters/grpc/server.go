package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ramordeeple/patient-management/internal/billing/application"
)

// BillingService is the unary contract exposed to the patient service.
// Registration is by hand-written ServiceDesc so the wire surface stays in
// one place without generated stubs.
type BillingService interface {
	CreateBillingAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type BillingServer struct {
	service *application.Service
}

func NewBillingServer(service *application.Service) *BillingServer {
	return &BillingServer{service: service}
}

func Register(server grpc.ServiceRegistrar, svc BillingService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: "billing.BillingService",
		HandlerType: (*BillingService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "CreateBillingAccount",
				Handler:    createBillingAccountHandler(svc),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "proto/billing.proto",
	}, svc)
}

func (s *BillingServer) CreateBillingAccount(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	patientID := fields["patient_id"].GetStringValue()
	if patientID == "" {
		return nil, status.Error(codes.InvalidArgument, "missing patient_id")
	}

	account, err := s.service.CreateAccount(ctx, patientID, fields["name"].GetStringValue(), fields["email"].GetStringValue())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create account: %v", err)
	}

	resp, err := structpb.NewStruct(map[string]any{
		"account_id": account.AccountID,
		"status":     account.Status,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func createBillingAccountHandler(svc BillingService) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return svc.CreateBillingAccount(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/billing.BillingService/CreateBillingAccount",
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return svc.CreateBillingAccount(ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}
