package ports

import (
	"context"

	"github.com/ramordeeple/patient-management/internal/contracts/patientevents"
)

// AnalyticsSink is the downstream store decoded events are handed to.
type AnalyticsSink interface {
	RecordPatientEvent(ctx context.Context, event patientevents.Event) error
}
