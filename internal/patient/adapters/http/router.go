package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramordeeple/patient-management/internal/patient/application"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/patients", func(r chi.Router) {
		r.Get("/", handler.listPatients)
		r.Post("/", handler.createPatient)
		r.Put("/{id}", handler.updatePatient)
		r.Delete("/{id}", handler.deletePatient)
	})

	return r
}
