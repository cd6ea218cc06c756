package postgres

import (
	"gorm.io/gorm"

	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

type Repositories struct {
	Patients ports.PatientRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Patients: &patientRepository{db: db},
	}
}
