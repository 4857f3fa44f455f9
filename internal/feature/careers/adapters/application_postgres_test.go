package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/careers/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Application{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestApplicationPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationPostgres(db)

	app := &entity.Application{
		ID:       "a1",
		FullName: "Jane Doe",
		Email:    "jane@clinic.example",
		Position: "Nurse",
	}
	err := repo.Create(context.Background(), app)

	require.NoError(t, err)
	assert.False(t, app.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestApplicationPostgres_List(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationPostgres(db)

		apps, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewApplicationPostgres(db)

		older := &entity.Application{
			ID: "a1", FullName: "Jane Doe", Email: "jane@clinic.example", Position: "Nurse",
			CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		}
		newer := &entity.Application{
			ID: "a2", FullName: "Bob Roe", Email: "bob@clinic.example", Position: "Receptionist",
			CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(context.Background(), older))
		require.NoError(t, repo.Create(context.Background(), newer))

		apps, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.Equal(t, "a2", apps[0].ID)
		assert.Equal(t, "a1", apps[1].ID)
	})
}
