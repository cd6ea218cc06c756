package application

import "github.com/ramordeeple/patient-management/internal/patient/domain"

type PatientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

type PatientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

func toResponse(p domain.Patient) PatientResponse {
	return PatientResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Address:     p.Address,
		DateOfBirth: domain.FormatDate(p.DateOfBirth),
	}
}
