package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// specializationRows counts the tutors and students rows for a user.
func specializationRows(t *testing.T, pool *pgxpool.Pool, userID int64) (tutors, students int) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tutors WHERE user_id = $1`, userID).Scan(&tutors))
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE user_id = $1`, userID).Scan(&students))
	return tutors, students
}

func TestAssignRoleKeepsSingleSpecializationRow(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	userID := createTestUser(t, pool, "pending@tutorhub.io")

	tutors, students := specializationRows(t, pool, userID)
	assert.Zero(t, tutors)
	assert.Zero(t, students)

	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleTutor))
	tutors, students = specializationRows(t, pool, userID)
	assert.Equal(t, 1, tutors)
	assert.Zero(t, students)

	// Switching roles swaps the row instead of accumulating both.
	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleStudent))
	tutors, students = specializationRows(t, pool, userID)
	assert.Zero(t, tutors)
	assert.Equal(t, 1, students)

	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleTutor))
	tutors, students = specializationRows(t, pool, userID)
	assert.Equal(t, 1, tutors)
	assert.Zero(t, students)

	updated, err := repo.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, models.RoleTutor, *updated.Role)
}

func TestAssignRoleSameRoleTwiceIsIdempotent(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	userID := createTestUser(t, pool, "tutor@tutorhub.io")

	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleTutor))
	require.NoError(t, repo.UpdateTutorSpecialization(ctx, userID, "Calculus"))

	// Re-assigning the same role must not duplicate or reset the row.
	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleTutor))

	tutors, students := specializationRows(t, pool, userID)
	assert.Equal(t, 1, tutors)
	assert.Zero(t, students)

	tutor, err := repo.GetTutorByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Calculus", tutor.Specialization)
}

func TestAssignRoleAdminRemovesSpecializationRows(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	userID := createTestUser(t, pool, "promoted@tutorhub.io")

	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleStudent))
	require.NoError(t, repo.AssignRole(ctx, userID, models.RoleAdmin))

	tutors, students := specializationRows(t, pool, userID)
	assert.Zero(t, tutors)
	assert.Zero(t, students)
}

func TestAssignRoleUnknownUser(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)

	err := repo.AssignRole(context.Background(), 987654, models.RoleTutor)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
