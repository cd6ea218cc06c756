package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ramordeeple/patient-management/internal/patient/domain"
	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

type patientRepository struct {
	db *gorm.DB
}

func (r *patientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	var recs []patientModel
	if err := r.db.WithContext(ctx).Order("registered_date, id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Patient, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainPatient(rec))
	}
	return out, nil
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Patient, error) {
	var rec patientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Patient{}, domain.ErrNotFound
		}
		return domain.Patient{}, err
	}
	return toDomainPatient(rec), nil
}

func (r *patientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&patientModel{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) ExistsByEmailExcluding(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&patientModel{}).
		Where("email = ? AND id <> ?", normalizeEmail(email), id).
		Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) Create(ctx context.Context, patient domain.Patient) (domain.Patient, error) {
	rec := fromDomainPatient(patient)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Patient{}, domain.ErrEmailExists
		}
		return domain.Patient{}, err
	}
	return toDomainPatient(rec), nil
}

func (r *patientRepository) Update(ctx context.Context, patient domain.Patient) (domain.Patient, error) {
	rec := fromDomainPatient(patient)
	res := r.db.WithContext(ctx).Model(&patientModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"name":          rec.Name,
		"email":         rec.Email,
		"address":       rec.Address,
		"date_of_birth": rec.DateOfBirth,
	})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.Patient{}, domain.ErrEmailExists
		}
		return domain.Patient{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Patient{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, patient.ID)
}

// Delete is idempotent: removing a missing patient is not an error.
func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&patientModel{}).Error
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toDomainPatient(rec patientModel) domain.Patient {
	return domain.Patient{
		ID:             rec.ID,
		Name:           rec.Name,
		Email:          rec.Email,
		Address:        rec.Address,
		DateOfBirth:    rec.DateOfBirth,
		RegisteredDate: rec.RegisteredDate,
	}
}

func fromDomainPatient(p domain.Patient) patientModel {
	return patientModel{
		ID:             p.ID,
		Name:           strings.TrimSpace(p.Name),
		Email:          normalizeEmail(p.Email),
		Address:        strings.TrimSpace(p.Address),
		DateOfBirth:    p.DateOfBirth,
		RegisteredDate: p.RegisteredDate,
	}
}

var _ ports.PatientRepository = (*patientRepository)(nil)
