package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ramordeeple/patient-management/internal/auth/application"
)

const bearerPrefix = "Bearer "

// login exchanges credentials for a bearer token. Every failure mode is a
// bodiless 401 so callers learn nothing about why authentication failed.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	resp, err := h.service.Authenticate(r.Context(), req)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// validate checks the bearer token from the Authorization header.
// 200 with no body on success, 401 otherwise.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	raw := strings.TrimPrefix(header, bearerPrefix)
	if _, err := h.service.ValidateToken(r.Context(), raw); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
}
