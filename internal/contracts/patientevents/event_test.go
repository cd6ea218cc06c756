package patientevents

import (
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := Event{
		PatientID: "7b7a3f2e-7f7e-4a39-9f5a-0a8a33e9a001",
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		EventType: EventTypePatientCreated,
	}
	out, err := Unmarshal(Marshal(in))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestUnmarshalMalformedPayload(t *testing.T) {
	t.Parallel()

	// A bytes-type tag announcing more payload than present.
	raw := protowire.AppendTag(nil, fieldPatientID, protowire.BytesType)
	raw = protowire.AppendVarint(raw, 200)
	raw = append(raw, []byte("short")...)

	if _, err := Unmarshal(raw); err == nil {
		t.Fatalf("expected error for truncated payload")
	}

	if _, err := Unmarshal([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatalf("expected error for garbage payload")
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	t.Parallel()

	raw := Marshal(Event{PatientID: "p-1", EventType: EventTypePatientCreated})
	raw = protowire.AppendTag(raw, 9, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 42)

	out, err := Unmarshal(raw)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.PatientID != "p-1" || out.EventType != EventTypePatientCreated {
		t.Fatalf("unexpected event: %+v", out)
	}
}

func TestMarshalOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	if got := Marshal(Event{}); len(got) != 0 {
		t.Fatalf("empty event should encode to zero bytes, got %v", got)
	}
	raw := Marshal(Event{Name: "Only Name"})
	if bytes.Contains(raw, []byte{byte(fieldPatientID<<3 | 2)}) && raw[0] != byte(fieldName<<3|2) {
		t.Fatalf("unexpected leading field in %v", raw)
	}
}
