package domain

import (
	"errors"
	"testing"
)

func TestValidateNewPatientAcceptsWellFormedInput(t *testing.T) {
	t.Parallel()

	dob, err := ValidateNewPatient("John Doe", "john.doe@example.com", "123 Main St", "1990-06-15")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if FormatDate(dob) != "1990-06-15" {
		t.Fatalf("unexpected parsed date %s", FormatDate(dob))
	}
}

func TestValidateNewPatientRejectsMissingFields(t *testing.T) {
	t.Parallel()

	cases := map[string][4]string{
		"empty name":       {"", "a@b.com", "addr", "1990-06-15"},
		"blank name":       {"   ", "a@b.com", "addr", "1990-06-15"},
		"empty email":      {"A", "", "addr", "1990-06-15"},
		"no at sign":       {"A", "nobody.example.com", "addr", "1990-06-15"},
		"at sign first":    {"A", "@example.com", "addr", "1990-06-15"},
		"no domain dot":    {"A", "a@examplecom", "addr", "1990-06-15"},
		"empty address":    {"A", "a@b.com", "", "1990-06-15"},
		"empty date":       {"A", "a@b.com", "addr", ""},
		"slash date":       {"A", "a@b.com", "addr", "15/06/1990"},
		"reordered date":   {"A", "a@b.com", "addr", "06-15-1990"},
		"nonsense date":    {"A", "a@b.com", "addr", "1990-13-45"},
		"datetime instead": {"A", "a@b.com", "addr", "1990-06-15T00:00:00Z"},
	}
	for name, c := range cases {
		if _, err := ValidateNewPatient(c[0], c[1], c[2], c[3]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestValidateNewPatientNamesTheOffendingField(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input [4]string
		field string
	}{
		"name":        {[4]string{"", "a@b.com", "addr", "1990-06-15"}, "name"},
		"email":       {[4]string{"A", "not-an-email", "addr", "1990-06-15"}, "email"},
		"address":     {[4]string{"A", "a@b.com", "", "1990-06-15"}, "address"},
		"dateOfBirth": {[4]string{"A", "a@b.com", "addr", "15/06/1990"}, "dateOfBirth"},
	}
	for name, c := range cases {
		_, err := ValidateNewPatient(c.input[0], c.input[1], c.input[2], c.input[3])
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("%s: expected FieldError, got %v", name, err)
		}
		if fieldErr.Field != c.field {
			t.Fatalf("%s: expected field %s, got %s", name, c.field, fieldErr.Field)
		}
		if fieldErr.Message == "" {
			t.Fatalf("%s: expected a message", name)
		}
	}
}

func TestParseDateTrimsWhitespace(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDate(" 1990-06-15 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDate(parsed) != "1990-06-15" {
		t.Fatalf("unexpected date %s", FormatDate(parsed))
	}
}
