package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

// writeDomainError maps domain errors onto the wire contract: conflicts,
// not-found, and validation failures all answer 400, the conflict and
// validation cases with a field-level detail map, everything unexpected a
// bare 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var fieldErr *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		writeJSON(w, http.StatusBadRequest, map[string]string{"email": "Email already exists!"})
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusBadRequest, "Patient not found")
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
