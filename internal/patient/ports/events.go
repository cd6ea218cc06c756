package ports

import (
	"context"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
)

// PatientEventPublisher emits domain events best-effort. Implementations
// must not surface delivery failures to the caller: a failed send is logged
// and the event is lost (at-most-once, no retry, no dead letter).
type PatientEventPublisher interface {
	PatientCreated(ctx context.Context, patient domain.Patient)
}
