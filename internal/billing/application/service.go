package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AccountStatus values on the wire.
const (
	StatusActive  = "ACTIVE"
	StatusPending = "PENDING"
	StatusFailed  = "FAILED"
)

type Account struct {
	AccountID string
	PatientID string
	Name      string
	Email     string
	Status    string
	CreatedAt time.Time
}

// Service assigns billing accounts. Accounts live in memory only; durable
// storage is a later concern for this service and the contract does not
// promise lookup.
type Service struct {
	mu       sync.Mutex
	accounts map[string]Account
	nowFn    func() time.Time
}

func NewService() *Service {
	return &Service{
		accounts: make(map[string]Account),
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateAccount(ctx context.Context, patientID, name, email string) (Account, error) {
	if patientID == "" {
		return Account{}, fmt.Errorf("patient id is required")
	}

	account := Account{
		AccountID: uuid.NewString(),
		PatientID: patientID,
		Name:      name,
		Email:     email,
		Status:    StatusActive,
		CreatedAt: s.nowFn(),
	}

	s.mu.Lock()
	// One account per patient: a repeated provision call for the same
	// patient returns the existing account instead of minting another.
	if existing, ok := s.accounts[patientID]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.accounts[patientID] = account
	s.mu.Unlock()

	slog.Default().InfoContext(ctx, "billing account created",
		"module", "application",
		"operation", "create_account",
		"outcome", "success",
		"patient_id", patientID,
		"account_id", account.AccountID,
	)
	return account, nil
}
