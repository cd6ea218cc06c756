package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ramordeeple/patient-management/internal/analytics/ports"
	"github.com/ramordeeple/patient-management/internal/contracts/patientevents"
)

type Config struct {
	ServiceName string
}

type Service struct {
	cfg  Config
	sink ports.AnalyticsSink
}

func NewService(cfg Config, sink ports.AnalyticsSink) *Service {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "analytics-service"
	}
	return &Service{cfg: cfg, sink: sink}
}

// HandlePatientEvent decodes one envelope and hands it to the sink. A decode
// failure is returned to the worker, which logs and drops that message; the
// subscription is never torn down for bad input.
func (s *Service) HandlePatientEvent(ctx context.Context, payload []byte) error {
	event, err := patientevents.Unmarshal(payload)
	if err != nil {
		return fmt.Errorf("decode patient event: %w", err)
	}

	slog.Default().InfoContext(ctx, "received patient event",
		"service", s.cfg.ServiceName,
		"module", "application",
		"operation", "handle_patient_event",
		"patient_id", event.PatientID,
		"name", event.Name,
		"email", event.Email,
		"event_type", event.EventType,
	)

	if s.sink == nil {
		return nil
	}
	return s.sink.RecordPatientEvent(ctx, event)
}
