package ports

import (
	"context"

	"github.com/ramordeeple/patient-management/internal/auth/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}
