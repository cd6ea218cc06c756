package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateNewPatient checks the raw request fields and returns the parsed
// date of birth. Failures carry the offending JSON field name so the HTTP
// layer can answer with a field-level detail map.
func ValidateNewPatient(name, email, address, dateOfBirth string) (time.Time, error) {
	if strings.TrimSpace(name) == "" {
		return time.Time{}, &FieldError{Field: "name", Message: "Name is required"}
	}
	if err := validateEmail(email); err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(address) == "" {
		return time.Time{}, &FieldError{Field: "address", Message: "Address is required"}
	}
	if strings.TrimSpace(dateOfBirth) == "" {
		return time.Time{}, &FieldError{Field: "dateOfBirth", Message: "Date of birth is required"}
	}
	dob, err := ParseDate(dateOfBirth)
	if err != nil {
		return time.Time{}, &FieldError{Field: "dateOfBirth", Message: "Date of birth must use the YYYY-MM-DD format"}
	}
	return dob, nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &FieldError{Field: "email", Message: "Email is required"}
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return &FieldError{Field: "email", Message: "Email should be a valid email address"}
	}
	return nil
}

func ParseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
