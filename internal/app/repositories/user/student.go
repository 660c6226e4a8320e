package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// StudentRepository handles student specialization rows
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetStudentByUserID retrieves the student row for a user
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, specialization FROM students WHERE user_id = $1`,
		userID).Scan(&student.ID, &student.UserID, &student.Specialization)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student row with its owning user
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.user_id, s.specialization, u.id, u.email, u.full_name, u.created_at
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1`,
		id).Scan(
		&student.ID, &student.UserID, &student.Specialization,
		&student.User.ID, &student.User.Email, &student.User.FullName, &student.User.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return student, nil
}

// ListStudents returns all students with their user profile
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.specialization, u.id, u.email, u.full_name, u.created_at
		FROM students s
		JOIN users u ON s.user_id = u.id
		ORDER BY u.full_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{User: &models.User{}}
		err := rows.Scan(
			&student.ID, &student.UserID, &student.Specialization,
			&student.User.ID, &student.User.Email, &student.User.FullName, &student.User.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdateSpecialization updates a student's specialization text
func (r *StudentRepository) UpdateSpecialization(ctx context.Context, userID int64, specialization string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students SET specialization = $1 WHERE user_id = $2`,
		specialization, userID)
	if err != nil {
		return fmt.Errorf("error updating student specialization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
