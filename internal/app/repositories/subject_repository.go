package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/dberrors"
)

// SubjectRepository handles database operations for subjects and the
// per-student grade records
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO subjects (class_id, name)
		VALUES ($1, $2)
		RETURNING id`,
		subject.ClassID, subject.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	subject.ID = id
	return id, nil
}

// GetSubjectByID retrieves a subject by ID
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject := &models.Subject{}
	err := r.db.QueryRow(ctx, `
		SELECT id, class_id, name, created_at, updated_at
		FROM subjects WHERE id = $1`,
		id).Scan(&subject.ID, &subject.ClassID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error fetching subject: %w", err)
	}
	return subject, nil
}

// ListByClass returns the subjects of a class
func (r *SubjectRepository) ListByClass(ctx context.Context, classID int64) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, class_id, name, created_at, updated_at
		FROM subjects WHERE class_id = $1
		ORDER BY name`,
		classID)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		err := rows.Scan(&subject.ID, &subject.ClassID, &subject.Name, &subject.CreatedAt, &subject.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// Update modifies a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE subjects SET name = $1, updated_at = NOW() WHERE id = $2`,
		subject.Name, subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// AssignStudent creates a student/subject record. The unique constraint
// on the pair maps to ErrAlreadyGraded.
func (r *SubjectRepository) AssignStudent(ctx context.Context, subjectID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO student_subjects (subject_id, student_id) VALUES ($1, $2)`,
		subjectID, studentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyGraded
		}
		return fmt.Errorf("error assigning student to subject: %w", err)
	}
	return nil
}

// RemoveStudent deletes a student/subject record
func (r *SubjectRepository) RemoveStudent(ctx context.Context, subjectID, studentID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM student_subjects WHERE subject_id = $1 AND student_id = $2`,
		subjectID, studentID)
	if err != nil {
		return fmt.Errorf("error removing student from subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateGrade sets score and/or attendance on a student/subject record.
// Nil values leave the stored value unchanged.
func (r *SubjectRepository) UpdateGrade(ctx context.Context, subjectID, studentID int64, score, attendance *float64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_subjects
		SET score = COALESCE($1, score),
		    attendance = COALESCE($2, attendance),
		    updated_at = NOW()
		WHERE subject_id = $3 AND student_id = $4`,
		score, attendance, subjectID, studentID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ListForStudent returns a student's subject records with the subject
// attached
func (r *SubjectRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentSubject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ss.id, ss.student_id, ss.subject_id, ss.score, ss.attendance, ss.created_at, ss.updated_at,
		       s.id, s.class_id, s.name, s.created_at, s.updated_at
		FROM student_subjects ss
		JOIN subjects s ON ss.subject_id = s.id
		WHERE ss.student_id = $1
		ORDER BY s.name`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student subjects: %w", err)
	}
	defer rows.Close()

	var records []*models.StudentSubject
	for rows.Next() {
		record := &models.StudentSubject{Subject: &models.Subject{}}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.SubjectID, &record.Score, &record.Attendance,
			&record.CreatedAt, &record.UpdatedAt,
			&record.Subject.ID, &record.Subject.ClassID, &record.Subject.Name,
			&record.Subject.CreatedAt, &record.Subject.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning student subject row: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student subject rows: %w", err)
	}

	return records, nil
}

// ListStudentsForSubject returns the grade records of every student
// assigned to a subject
func (r *SubjectRepository) ListStudentsForSubject(ctx context.Context, subjectID int64) ([]*models.StudentSubject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ss.id, ss.student_id, ss.subject_id, ss.score, ss.attendance, ss.created_at, ss.updated_at
		FROM student_subjects ss
		WHERE ss.subject_id = $1
		ORDER BY ss.student_id`,
		subjectID)
	if err != nil {
		return nil, fmt.Errorf("error listing subject students: %w", err)
	}
	defer rows.Close()

	var records []*models.StudentSubject
	for rows.Next() {
		record := &models.StudentSubject{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.SubjectID, &record.Score, &record.Attendance,
			&record.CreatedAt, &record.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject student row: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject student rows: %w", err)
	}

	return records, nil
}
