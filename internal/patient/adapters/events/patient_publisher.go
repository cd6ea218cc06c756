package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/ramordeeple/patient-management/internal/contracts/patientevents"
	"github.com/ramordeeple/patient-management/internal/patient/domain"
	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

// Publisher is the raw transport underneath PatientPublisher. Satisfied by
// KafkaPublisher in production and LoggingPublisher when no broker is
// configured.
type Publisher interface {
	Publish(ctx context.Context, payload []byte, partitionKey string) error
}

// PatientPublisher encodes patient events into the binary envelope and sends
// them fire-and-forget. Sends run off the request goroutine and errors are
// logged and swallowed: at-most-once, a failed publish is silent event loss.
type PatientPublisher struct {
	logger      *slog.Logger
	transport   Publisher
	sendTimeout time.Duration
}

func NewPatientPublisher(logger *slog.Logger, transport Publisher) *PatientPublisher {
	return &PatientPublisher{
		logger:      logger,
		transport:   transport,
		sendTimeout: 10 * time.Second,
	}
}

func (p *PatientPublisher) PatientCreated(ctx context.Context, patient domain.Patient) {
	payload := patientevents.Marshal(patientevents.Event{
		PatientID: patient.ID.String(),
		Name:      patient.Name,
		Email:     patient.Email,
		EventType: patientevents.EventTypePatientCreated,
	})

	// Detached from the request context: the HTTP response does not wait for
	// broker acknowledgement, and a response-side cancel must not abort the
	// in-flight send.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.sendTimeout)
	go func() {
		defer cancel()
		if err := p.transport.Publish(sendCtx, payload, patient.ID.String()); err != nil {
			p.logger.ErrorContext(sendCtx, "error sending PatientCreated event",
				"module", "events.patient_publisher",
				"operation", "patient_created",
				"outcome", "failure",
				"patient_id", patient.ID.String(),
				"error", err,
			)
		}
	}()
}

var _ ports.PatientEventPublisher = (*PatientPublisher)(nil)
