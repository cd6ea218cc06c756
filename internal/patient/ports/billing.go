package ports

import "context"

// AccountStatus values mirror the billing service's wire contract.
const (
	AccountStatusActive  = "ACTIVE"
	AccountStatusPending = "PENDING"
	AccountStatusFailed  = "FAILED"
)

type BillingAccount struct {
	AccountID string
	Status    string
}

// BillingClient provisions a billing account for a newly persisted patient.
// The call is synchronous; transport errors surface to the caller untranslated.
type BillingClient interface {
	ProvisionAccount(ctx context.Context, patientID, name, email string) (BillingAccount, error)
}
