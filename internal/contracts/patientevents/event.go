// Package patientevents defines the binary envelope exchanged on the
// "patient" topic. The wire format is proto3-compatible: four string fields
// encoded with protowire, so producers and consumers in other stacks can keep
// using their generated PatientEvent bindings.
package patientevents

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const EventTypePatientCreated = "PATIENT_CREATED"

// Field numbers are part of the wire contract and must not be reused.
const (
	fieldPatientID = 1
	fieldName      = 2
	fieldEmail     = 3
	fieldEventType = 4
)

type Event struct {
	PatientID string
	Name      string
	Email     string
	EventType string
}

// Marshal encodes the event into the compact binary envelope.
func Marshal(e Event) []byte {
	var buf []byte
	buf = appendStringField(buf, fieldPatientID, e.PatientID)
	buf = appendStringField(buf, fieldName, e.Name)
	buf = appendStringField(buf, fieldEmail, e.Email)
	buf = appendStringField(buf, fieldEventType, e.EventType)
	return buf
}

// Unmarshal decodes a binary envelope. Unknown fields are skipped so the
// schema can grow without breaking older consumers; malformed input returns
// an error and decodes nothing.
func Unmarshal(raw []byte) (Event, error) {
	var e Event
	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return Event{}, fmt.Errorf("decode envelope tag: %w", protowire.ParseError(n))
		}
		raw = raw[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, raw)
			if n < 0 {
				return Event{}, fmt.Errorf("decode envelope field %d: %w", num, protowire.ParseError(n))
			}
			raw = raw[n:]
			continue
		}

		val, n := protowire.ConsumeBytes(raw)
		if n < 0 {
			return Event{}, fmt.Errorf("decode envelope field %d: %w", num, protowire.ParseError(n))
		}
		raw = raw[n:]

		switch num {
		case fieldPatientID:
			e.PatientID = string(val)
		case fieldName:
			e.Name = string(val)
		case fieldEmail:
			e.Email = string(val)
		case fieldEventType:
			e.EventType = string(val)
		}
	}
	return e, nil
}

func appendStringField(buf []byte, num protowire.Number, val string) []byte {
	if val == "" {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendString(buf, val)
}
