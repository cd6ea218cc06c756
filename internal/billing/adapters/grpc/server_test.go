package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ramordeeple/patient-management/internal/billing/application"
)

func TestCreateBillingAccountRPC(t *testing.T) {
	t.Parallel()

	server := NewBillingServer(application.NewService())
	req, err := structpb.NewStruct(map[string]any{
		"patient_id": "patient-1",
		"name":       "John Doe",
		"email":      "john.doe@example.com",
	})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	resp, err := server.CreateBillingAccount(context.Background(), req)
	if err != nil {
		t.Fatalf("rpc: %v", err)
	}
	fields := resp.GetFields()
	if fields["account_id"].GetStringValue() == "" {
		t.Fatal("expected account_id in response")
	}
	if got := fields["status"].GetStringValue(); got != application.StatusActive {
		t.Fatalf("expected status ACTIVE, got %s", got)
	}
}

func TestCreateBillingAccountRejectsMissingPatientID(t *testing.T) {
	t.Parallel()

	server := NewBillingServer(application.NewService())
	req, err := structpb.NewStruct(map[string]any{"name": "John Doe"})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	_, err = server.CreateBillingAccount(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
