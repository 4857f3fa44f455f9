// Package adapters provides repository implementations for the careers
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"clinic_backend/internal/feature/careers/domain/entity"
	"clinic_backend/internal/feature/careers/usecase"
)

// applicationPostgres is the Postgres implementation of
// ApplicationRepository, using GORM for database access.
type applicationPostgres struct {
	db *gorm.DB
}

// Compile-time check that applicationPostgres implements
// ApplicationRepository.
var _ usecase.ApplicationRepository = (*applicationPostgres)(nil)

// NewApplicationPostgres creates a new applicationPostgres with the
// given gorm.DB connection.
func NewApplicationPostgres(db *gorm.DB) *applicationPostgres {
	return &applicationPostgres{db: db}
}

// Create persists a new application row.
func (r *applicationPostgres) Create(ctx context.Context, a *entity.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// List retrieves all application rows, newest first.
func (r *applicationPostgres) List(ctx context.Context) ([]entity.Application, error) {
	var out []entity.Application
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
