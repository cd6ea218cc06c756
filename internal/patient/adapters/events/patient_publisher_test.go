package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ramordeeple/patient-management/internal/contracts/patientevents"
	"github.com/ramordeeple/patient-management/internal/patient/domain"
)

type channelTransport struct {
	payloads chan []byte
	keys     chan string
	err      error
}

func newChannelTransport(err error) *channelTransport {
	return &channelTransport{
		payloads: make(chan []byte, 1),
		keys:     make(chan string, 1),
		err:      err,
	}
}

func (t *channelTransport) Publish(_ context.Context, payload []byte, partitionKey string) error {
	t.payloads <- payload
	t.keys <- partitionKey
	return t.err
}

func TestPatientCreatedSendsEnvelopeOffRequestPath(t *testing.T) {
	t.Parallel()

	transport := newChannelTransport(nil)
	publisher := NewPatientPublisher(slog.New(slog.NewJSONHandler(io.Discard, nil)), transport)

	patient := domain.Patient{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john.doe@example.com",
	}
	publisher.PatientCreated(context.Background(), patient)

	select {
	case payload := <-transport.payloads:
		event, err := patientevents.Unmarshal(payload)
		if err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}
		if event.PatientID != patient.ID.String() || event.Name != "John Doe" || event.Email != "john.doe@example.com" {
			t.Fatalf("envelope does not match patient: %+v", event)
		}
		if event.EventType != patientevents.EventTypePatientCreated {
			t.Fatalf("expected PATIENT_CREATED, got %s", event.EventType)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("publish never reached the transport")
	}
	if key := <-transport.keys; key != patient.ID.String() {
		t.Fatalf("expected patient id as partition key, got %s", key)
	}
}

func TestPatientCreatedSwallowsTransportErrors(t *testing.T) {
	t.Parallel()

	transport := newChannelTransport(errors.New("broker unreachable"))
	publisher := NewPatientPublisher(slog.New(slog.NewJSONHandler(io.Discard, nil)), transport)

	// The call itself must not block or panic; the error stays inside the
	// publisher goroutine.
	publisher.PatientCreated(context.Background(), domain.Patient{ID: uuid.New()})

	select {
	case <-transport.payloads:
	case <-time.After(2 * time.Second):
		t.Fatal("publish never reached the transport")
	}
	<-transport.keys
}

func TestPatientCreatedSurvivesCancelledRequestContext(t *testing.T) {
	t.Parallel()

	transport := newChannelTransport(nil)
	publisher := NewPatientPublisher(slog.New(slog.NewJSONHandler(io.Discard, nil)), transport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	publisher.PatientCreated(ctx, domain.Patient{ID: uuid.New()})

	select {
	case <-transport.payloads:
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled request context must not abort the send")
	}
	<-transport.keys
}
