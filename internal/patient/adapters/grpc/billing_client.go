package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

const createBillingAccountMethod = "/billing.BillingService/CreateBillingAccount"

// BillingClient holds one long-lived plaintext connection to the billing
// service, opened at startup and reused for every call.
type BillingClient struct {
	conn        *grpc.ClientConn
	callTimeout time.Duration
}

// NewBillingClient dials the billing endpoint. A callTimeout of zero means
// no deadline: the call blocks until the transport gives up.
func NewBillingClient(endpoint string, callTimeout time.Duration) (*BillingClient, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial billing grpc: %w", err)
	}
	slog.Default().Info("connected to billing service", "module", "grpc.billing_client", "endpoint", endpoint)
	return &BillingClient{conn: conn, callTimeout: callTimeout}, nil
}

func (c *BillingClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// ProvisionAccount issues the blocking unary call. No retry; transport
// errors surface to the caller untranslated.
func (c *BillingClient) ProvisionAccount(ctx context.Context, patientID, name, email string) (ports.BillingAccount, error) {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	req, err := structpb.NewStruct(map[string]any{
		"patient_id": patientID,
		"name":       name,
		"email":      email,
	})
	if err != nil {
		return ports.BillingAccount{}, fmt.Errorf("build billing request: %w", err)
	}

	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, createBillingAccountMethod, req, resp); err != nil {
		return ports.BillingAccount{}, err
	}

	account := ports.BillingAccount{
		AccountID: resp.GetFields()["account_id"].GetStringValue(),
		Status:    resp.GetFields()["status"].GetStringValue(),
	}
	slog.Default().InfoContext(ctx, "billing account provisioned",
		"module", "grpc.billing_client",
		"operation", "provision_account",
		"outcome", "success",
		"patient_id", patientID,
		"account_id", account.AccountID,
		"status", account.Status,
	)
	return account, nil
}

var _ ports.BillingClient = (*BillingClient)(nil)
