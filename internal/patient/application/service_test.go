package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

type memoryPatients struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Patient
}

func newMemoryPatients() *memoryPatients {
	return &memoryPatients{items: map[uuid.UUID]domain.Patient{}}
}

func (m *memoryPatients) List(context.Context) ([]domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Patient, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryPatients) GetByID(_ context.Context, id uuid.UUID) (domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return domain.Patient{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memoryPatients) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryPatients) ExistsByEmailExcluding(_ context.Context, email string, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.Email == email && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryPatients) Create(_ context.Context, patient domain.Patient) (domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	patient.ID = uuid.New()
	m.items[patient.ID] = patient
	return patient, nil
}

func (m *memoryPatients) Update(_ context.Context, patient domain.Patient) (domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[patient.ID]
	if !ok {
		return domain.Patient{}, domain.ErrNotFound
	}
	patient.RegisteredDate = existing.RegisteredDate
	m.items[patient.ID] = patient
	return patient, nil
}

func (m *memoryPatients) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type provisionCall struct {
	patientID string
	name      string
	email     string
}

type fakeBilling struct {
	mu    sync.Mutex
	calls []provisionCall
	err   error
}

func (f *fakeBilling) ProvisionAccount(_ context.Context, patientID, name, email string) (ports.BillingAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, provisionCall{patientID: patientID, name: name, email: email})
	if f.err != nil {
		return ports.BillingAccount{}, f.err
	}
	return ports.BillingAccount{AccountID: uuid.NewString(), Status: ports.AccountStatusActive}, nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []domain.Patient
}

func (f *fakePublisher) PatientCreated(_ context.Context, patient domain.Patient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, patient)
}

type fixture struct {
	service   *Service
	patients  *memoryPatients
	billing   *fakeBilling
	publisher *fakePublisher
}

func newFixture() *fixture {
	patients := newMemoryPatients()
	billing := &fakeBilling{}
	publisher := &fakePublisher{}
	service := NewService(Dependencies{
		Patients:  patients,
		Billing:   billing,
		Publisher: publisher,
	})
	return &fixture{service: service, patients: patients, billing: billing, publisher: publisher}
}

func validRequest() PatientRequest {
	return PatientRequest{
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		Address:     "123 Main St",
		DateOfBirth: "1990-06-15",
	}
}

func TestCreatePatientPersistsProvisionsAndPublishes(t *testing.T) {
	t.Parallel()

	f := newFixture()
	resp, err := f.service.CreatePatient(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected generated patient id")
	}
	if resp.DateOfBirth != "1990-06-15" {
		t.Fatalf("unexpected dateOfBirth %s", resp.DateOfBirth)
	}

	if len(f.billing.calls) != 1 {
		t.Fatalf("expected exactly one provisioning call, got %d", len(f.billing.calls))
	}
	call := f.billing.calls[0]
	if call.patientID != resp.ID {
		t.Fatalf("provisioning used id %s, persisted id is %s", call.patientID, resp.ID)
	}
	if call.name != "John Doe" || call.email != "john.doe@example.com" {
		t.Fatalf("unexpected provisioning payload %+v", call)
	}

	if len(f.publisher.published) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(f.publisher.published))
	}
	event := f.publisher.published[0]
	if event.ID.String() != resp.ID || event.Name != "John Doe" || event.Email != "john.doe@example.com" {
		t.Fatalf("event fields do not match persisted patient: %+v", event)
	}
}

func TestCreatePatientStampsRegistrationAtCallTime(t *testing.T) {
	t.Parallel()

	f := newFixture()
	time.Sleep(20 * time.Millisecond)
	before := time.Now().UTC()

	resp, err := f.service.CreatePatient(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	stored := f.patients.items[uuid.MustParse(resp.ID)]
	if stored.RegisteredDate.Before(before) {
		t.Fatalf("registered date %s predates the request at %s", stored.RegisteredDate, before)
	}
}

func TestCreatePatientRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.CreatePatient(context.Background(), validRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req := validRequest()
	req.Name = "Jane Doe"
	_, err := f.service.CreatePatient(context.Background(), req)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if len(f.patients.items) != 1 {
		t.Fatalf("duplicate must not persist, have %d records", len(f.patients.items))
	}
	if len(f.billing.calls) != 1 {
		t.Fatalf("duplicate must not provision, got %d calls", len(f.billing.calls))
	}
	if len(f.publisher.published) != 1 {
		t.Fatalf("duplicate must not publish, got %d events", len(f.publisher.published))
	}
}

func TestCreatePatientBillingFailureLeavesRecordVisible(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.billing.err = errors.New("billing unavailable")

	_, err := f.service.CreatePatient(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected provisioning error to propagate")
	}

	if len(f.patients.items) != 1 {
		t.Fatalf("patient must stay persisted after billing failure, have %d records", len(f.patients.items))
	}
	if len(f.publisher.published) != 0 {
		t.Fatalf("no event expected after billing failure, got %d", len(f.publisher.published))
	}

	list, _ := f.service.GetPatients(context.Background())
	if len(list) != 1 {
		t.Fatalf("expected partial record visible on reads, got %d", len(list))
	}
}

func TestCreatePatientValidatesInput(t *testing.T) {
	t.Parallel()

	f := newFixture()
	cases := map[string]PatientRequest{
		"missing name":  {Email: "a@b.com", Address: "x", DateOfBirth: "1990-06-15"},
		"missing email": {Name: "A", Address: "x", DateOfBirth: "1990-06-15"},
		"bad email":     {Name: "A", Email: "not-an-email", Address: "x", DateOfBirth: "1990-06-15"},
		"bad date":      {Name: "A", Email: "a@b.com", Address: "x", DateOfBirth: "15/06/1990"},
	}
	for name, req := range cases {
		if _, err := f.service.CreatePatient(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if len(f.patients.items) != 0 || len(f.billing.calls) != 0 {
		t.Fatal("invalid input must not reach persistence or billing")
	}
}

func TestUpdatePatientKeepsRegisteredDateAndChecksUniqueness(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	first, err := f.service.CreatePatient(ctx, validRequest())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := validRequest()
	second.Email = "jane.doe@example.com"
	second.Name = "Jane Doe"
	if _, err := f.service.CreatePatient(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	id := uuid.MustParse(first.ID)
	registered := f.patients.items[id].RegisteredDate

	update := validRequest()
	update.Address = "456 Oak Ave"
	resp, err := f.service.UpdatePatient(ctx, id, update)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Address != "456 Oak Ave" {
		t.Fatalf("unexpected address %s", resp.Address)
	}
	if !f.patients.items[id].RegisteredDate.Equal(registered) {
		t.Fatal("registered date must not change on update")
	}

	update.Email = "jane.doe@example.com"
	if _, err := f.service.UpdatePatient(ctx, id, update); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists for taken email, got %v", err)
	}
}

func TestUpdatePatientAllowsKeepingOwnEmail(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	created, err := f.service.CreatePatient(ctx, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := validRequest()
	update.Name = "John Q. Doe"
	if _, err := f.service.UpdatePatient(ctx, uuid.MustParse(created.ID), update); err != nil {
		t.Fatalf("update keeping own email: %v", err)
	}
}

func TestUpdatePatientUnknownID(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.service.UpdatePatient(context.Background(), uuid.New(), validRequest())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePatientIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	created, err := f.service.CreatePatient(ctx, validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	if err := f.service.DeletePatient(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.service.DeletePatient(ctx, id); err != nil {
		t.Fatalf("second delete must succeed, got %v", err)
	}
}
