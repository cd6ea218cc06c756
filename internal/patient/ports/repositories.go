package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
)

type PatientRepository interface {
	List(ctx context.Context) ([]domain.Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByEmailExcluding reports whether the email belongs to a patient
	// other than the given id; used by the update uniqueness-on-change check.
	ExistsByEmailExcluding(ctx context.Context, email string, id uuid.UUID) (bool, error)
	Create(ctx context.Context, patient domain.Patient) (domain.Patient, error)
	Update(ctx context.Context, patient domain.Patient) (domain.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
