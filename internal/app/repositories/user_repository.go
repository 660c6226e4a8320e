package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/repositories/user"
	"github.com/tutorhub/backend/internal/db"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// UserRepository combines all user-related repositories
type UserRepository struct {
	pool    *pgxpool.Pool
	common  *user.Repository
	tutor   *user.TutorRepository
	student *user.StudentRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:    pool,
		common:  user.NewRepository(pool),
		tutor:   user.NewTutorRepository(pool),
		student: user.NewStudentRepository(pool),
	}
}

// CreateUser creates a new pending user
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// UpdateProfile updates a user's own profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	return r.common.UpdateProfile(ctx, u)
}

// DeleteUser deletes a user
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// ListUsers lists users with pagination, optionally only pending ones
func (r *UserRepository) ListUsers(ctx context.Context, pendingOnly bool, offset uint64, limit int) ([]*models.User, int64, error) {
	return r.common.ListUsers(ctx, pendingOnly, offset, limit)
}

// GetUsersByIDs fetches users keyed by id
func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	return r.common.GetUsersByIDs(ctx, ids)
}

// GetTutorByUserID retrieves the tutor row for a user
func (r *UserRepository) GetTutorByUserID(ctx context.Context, userID int64) (*models.Tutor, error) {
	return r.tutor.GetTutorByUserID(ctx, userID)
}

// GetTutorByID retrieves a tutor with its user profile
func (r *UserRepository) GetTutorByID(ctx context.Context, id int64) (*models.Tutor, error) {
	return r.tutor.GetTutorByID(ctx, id)
}

// ListTutors lists all tutors
func (r *UserRepository) ListTutors(ctx context.Context) ([]*models.Tutor, error) {
	return r.tutor.ListTutors(ctx)
}

// UpdateTutorSpecialization updates a tutor's specialization text
func (r *UserRepository) UpdateTutorSpecialization(ctx context.Context, userID int64, specialization string) error {
	return r.tutor.UpdateSpecialization(ctx, userID, specialization)
}

// GetStudentByUserID retrieves the student row for a user
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}

// GetStudentByID retrieves a student with its user profile
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.student.GetStudentByID(ctx, id)
}

// ListStudents lists all students
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return r.student.ListStudents(ctx)
}

// UpdateStudentSpecialization updates a student's specialization text
func (r *UserRepository) UpdateStudentSpecialization(ctx context.Context, userID int64, specialization string) error {
	return r.student.UpdateSpecialization(ctx, userID, specialization)
}

// defaultSpecialization is the placeholder stored on freshly created
// specialization rows until the user fills it in.
const defaultSpecialization = "General"

// AssignRole performs the admin role transition in one transaction: any
// specialization row for a different role is removed, the user's role is
// set, and a fresh specialization row is created for TUTOR/STUDENT. Either
// every step commits or none does.
func (r *UserRepository) AssignRole(ctx context.Context, userID int64, role models.RoleType) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`,
			role, userID)
		if err != nil {
			return fmt.Errorf("error setting user role: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		// Drop specialization rows that no longer match the role.
		if role != models.RoleTutor {
			if _, err := tx.Exec(ctx, `DELETE FROM tutors WHERE user_id = $1`, userID); err != nil {
				return fmt.Errorf("error removing tutor row: %w", err)
			}
		}
		if role != models.RoleStudent {
			if _, err := tx.Exec(ctx, `DELETE FROM students WHERE user_id = $1`, userID); err != nil {
				return fmt.Errorf("error removing student row: %w", err)
			}
		}

		switch role {
		case models.RoleTutor:
			if _, err := tx.Exec(ctx, `
				INSERT INTO tutors (user_id, specialization) VALUES ($1, $2)
				ON CONFLICT (user_id) DO NOTHING`,
				userID, defaultSpecialization); err != nil {
				return fmt.Errorf("error creating tutor row: %w", err)
			}
		case models.RoleStudent:
			if _, err := tx.Exec(ctx, `
				INSERT INTO students (user_id, specialization) VALUES ($1, $2)
				ON CONFLICT (user_id) DO NOTHING`,
				userID, defaultSpecialization); err != nil {
				return fmt.Errorf("error creating student row: %w", err)
			}
		}

		return nil
	})
}
