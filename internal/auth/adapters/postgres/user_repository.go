package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ramordeeple/patient-management/internal/auth/domain"
	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Surfaced as the same masked failure as a wrong password.
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	rec := userModel{
		Email:        strings.ToLower(strings.TrimSpace(user.Email)),
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}
	if user.UserID != (domain.User{}).UserID {
		rec.UserID = user.UserID
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		UserID:       rec.UserID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Role:         rec.Role,
		CreatedAt:    rec.CreatedAt,
	}
}

var _ ports.UserRepository = (*userRepository)(nil)
