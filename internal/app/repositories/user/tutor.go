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

// TutorRepository handles tutor specialization rows
type TutorRepository struct {
	db *pgxpool.Pool
}

// NewTutorRepository creates a new TutorRepository
func NewTutorRepository(db *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{db: db}
}

// GetTutorByUserID retrieves the tutor row for a user
func (r *TutorRepository) GetTutorByUserID(ctx context.Context, userID int64) (*models.Tutor, error) {
	tutor := &models.Tutor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, specialization FROM tutors WHERE user_id = $1`,
		userID).Scan(&tutor.ID, &tutor.UserID, &tutor.Specialization)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTutorNotFound
		}
		return nil, fmt.Errorf("error fetching tutor: %w", err)
	}
	return tutor, nil
}

// GetTutorByID retrieves a tutor row with its owning user
func (r *TutorRepository) GetTutorByID(ctx context.Context, id int64) (*models.Tutor, error) {
	tutor := &models.Tutor{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.user_id, t.specialization, u.id, u.email, u.full_name, u.created_at
		FROM tutors t
		JOIN users u ON t.user_id = u.id
		WHERE t.id = $1`,
		id).Scan(
		&tutor.ID, &tutor.UserID, &tutor.Specialization,
		&tutor.User.ID, &tutor.User.Email, &tutor.User.FullName, &tutor.User.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTutorNotFound
		}
		return nil, fmt.Errorf("error fetching tutor: %w", err)
	}
	return tutor, nil
}

// ListTutors returns all tutors with their user profile
func (r *TutorRepository) ListTutors(ctx context.Context) ([]*models.Tutor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.user_id, t.specialization, u.id, u.email, u.full_name, u.created_at
		FROM tutors t
		JOIN users u ON t.user_id = u.id
		ORDER BY u.full_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*models.Tutor
	for rows.Next() {
		tutor := &models.Tutor{User: &models.User{}}
		err := rows.Scan(
			&tutor.ID, &tutor.UserID, &tutor.Specialization,
			&tutor.User.ID, &tutor.User.Email, &tutor.User.FullName, &tutor.User.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning tutor row: %w", err)
		}
		tutors = append(tutors, tutor)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tutor rows: %w", err)
	}

	return tutors, nil
}

// UpdateSpecialization updates a tutor's specialization text
func (r *TutorRepository) UpdateSpecialization(ctx context.Context, userID int64, specialization string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tutors SET specialization = $1 WHERE user_id = $2`,
		specialization, userID)
	if err != nil {
		return fmt.Errorf("error updating tutor specialization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTutorNotFound
	}
	return nil
}
