package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/app/migrations"
	"github.com/tutorhub/backend/internal/app/models"
)

// testPool connects to the database named by TEST_DATABASE_URL, applies
// the schema migrations and wipes user data so every test starts from a
// clean slate. Tests that need a real database are skipped when the
// variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))

	migrator := migrations.NewMigrator(pool)
	require.NoError(t, migrator.MigrateFromDirectory(filepath.Join("..", "..", "..", "migrations")))

	_, err = pool.Exec(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

// createTestUser inserts a pending user and returns its id.
func createTestUser(t *testing.T, pool *pgxpool.Pool, email string) int64 {
	t.Helper()

	id, err := NewUserRepository(pool).CreateUser(context.Background(), &models.User{
		Email:         email,
		Password:      "not-a-real-hash",
		FullName:      "Test User",
		RequestedRole: models.RoleStudent,
	})
	require.NoError(t, err)
	return id
}
