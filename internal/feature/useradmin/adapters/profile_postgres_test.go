package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clinic_backend/internal/feature/useradmin/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Profile{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewProfilePostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewProfilePostgres(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestProfilePostgres_Upsert(t *testing.T) {
	t.Run("inserts a new row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		p := &entity.Profile{
			ID:          "u1",
			Email:       "jane@clinic.example",
			FullName:    "Jane Doe",
			DisplayName: "Jane Doe",
			Role:        entity.RoleUser,
		}
		err := repo.Upsert(context.Background(), p)

		require.NoError(t, err)
		assert.False(t, p.CreatedAt.IsZero(), "CreatedAt is not set")

		rows, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Jane Doe", rows[0].FullName)
	})

	t.Run("replaces an existing row by id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		first := &entity.Profile{ID: "u1", Email: "jane@clinic.example", FullName: "Jane Doe", Role: entity.RoleUser}
		require.NoError(t, repo.Upsert(context.Background(), first))

		second := &entity.Profile{ID: "u1", Email: "jane@clinic.example", FullName: "Jane A. Doe", Role: entity.RoleAdmin}
		require.NoError(t, repo.Upsert(context.Background(), second))

		rows, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1, "upsert must not create a duplicate")
		assert.Equal(t, "Jane A. Doe", rows[0].FullName)
		assert.Equal(t, entity.RoleAdmin, rows[0].Role)
	})
}

func TestProfilePostgres_List(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		rows, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("multiple rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		for _, p := range []*entity.Profile{
			{ID: "u1", Email: "jane@clinic.example", FullName: "Jane Doe", Role: entity.RoleAdmin},
			{ID: "u2", Email: "bob@clinic.example", FullName: "Bob Roe", Role: entity.RoleUser},
		} {
			require.NoError(t, repo.Upsert(context.Background(), p))
		}

		rows, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestProfilePostgres_Delete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		p := &entity.Profile{ID: "u1", Email: "jane@clinic.example", FullName: "Jane Doe", Role: entity.RoleUser}
		require.NoError(t, repo.Upsert(context.Background(), p))

		require.NoError(t, repo.Delete(context.Background(), "u1"))

		rows, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("absent row is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewProfilePostgres(db)

		assert.NoError(t, repo.Delete(context.Background(), "ghost"))
	})
}
