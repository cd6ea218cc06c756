package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
)

// CreatePatient runs the onboarding workflow:
//
//	validate -> persist -> provision billing -> publish event -> respond
//
// The persist step is the durability point. A billing failure after it
// propagates to the caller while the record stays visible; there is no
// compensating delete, retry, or outbox tying the three side effects
// together. Publish failures are swallowed by the publisher and never affect
// the response.
func (s *Service) CreatePatient(ctx context.Context, req PatientRequest) (PatientResponse, error) {
	dob, err := domain.ValidateNewPatient(req.Name, req.Email, req.Address, req.DateOfBirth)
	if err != nil {
		return PatientResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.patients.ExistsByEmail(ctx, email)
	if err != nil {
		return PatientResponse{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return PatientResponse{}, fmt.Errorf("%w: %s", domain.ErrEmailExists, email)
	}

	patient, err := s.patients.Create(ctx, domain.Patient{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Address:        strings.TrimSpace(req.Address),
		DateOfBirth:    dob,
		RegisteredDate: s.nowFn(),
	})
	if err != nil {
		return PatientResponse{}, err
	}

	// Synchronous provisioning call. If it fails the patient is already
	// durable and the error still goes to the caller.
	if _, err := s.billing.ProvisionAccount(ctx, patient.ID.String(), patient.Name, patient.Email); err != nil {
		slog.Default().ErrorContext(ctx, "billing provisioning failed after persist",
			"service", s.cfg.ServiceName,
			"module", "application",
			"operation", "create_patient",
			"outcome", "partial_failure",
			"patient_id", patient.ID.String(),
			"error", err,
		)
		return PatientResponse{}, fmt.Errorf("provision billing account: %w", err)
	}

	s.publisher.PatientCreated(ctx, patient)

	return toResponse(patient), nil
}

func (s *Service) GetPatients(ctx context.Context) ([]PatientResponse, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toResponse(p))
	}
	return out, nil
}

// UpdatePatient follows load -> uniqueness-on-change -> save. The registered
// date is never rewritten.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req PatientRequest) (PatientResponse, error) {
	dob, err := domain.ValidateNewPatient(req.Name, req.Email, req.Address, req.DateOfBirth)
	if err != nil {
		return PatientResponse{}, err
	}

	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return PatientResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.patients.ExistsByEmailExcluding(ctx, email, id)
	if err != nil {
		return PatientResponse{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return PatientResponse{}, fmt.Errorf("%w: %s", domain.ErrEmailExists, email)
	}

	patient.Name = strings.TrimSpace(req.Name)
	patient.Email = email
	patient.Address = strings.TrimSpace(req.Address)
	patient.DateOfBirth = dob

	updated, err := s.patients.Update(ctx, patient)
	if err != nil {
		return PatientResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}
