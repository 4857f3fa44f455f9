// Package adapters provides repository implementations for the useradmin
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic_backend/internal/feature/useradmin/domain/entity"
	"clinic_backend/internal/feature/useradmin/usecase"
)

// profilePostgres is the Postgres implementation of ProfileRepository,
// using GORM for database access.
type profilePostgres struct {
	db *gorm.DB
}

// Compile-time check that profilePostgres implements ProfileRepository.
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfilePostgres creates a new profilePostgres with the given
// gorm.DB connection.
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// Upsert inserts the profile row, or replaces every non-key column when a
// row with the same ID already exists.
func (r *profilePostgres) Upsert(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

// List retrieves all profile rows.
func (r *profilePostgres) List(ctx context.Context) ([]entity.Profile, error) {
	var out []entity.Profile
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the profile row for the given ID. A missing row is not
// an error.
func (r *profilePostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Profile{}).Error
}
