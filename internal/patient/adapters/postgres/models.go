package postgres

import (
	"time"

	"github.com/google/uuid"
)

type patientModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string    `gorm:"column:name"`
	Email          string    `gorm:"column:email"`
	Address        string    `gorm:"column:address"`
	DateOfBirth    time.Time `gorm:"column:date_of_birth"`
	RegisteredDate time.Time `gorm:"column:registered_date"`
}

func (patientModel) TableName() string { return "patients" }
