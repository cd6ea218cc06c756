package postgres

import (
	"gorm.io/gorm"

	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

type Repositories struct {
	Users ports.UserRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users: &userRepository{db: db},
	}
}
