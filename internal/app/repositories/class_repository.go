package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/dberrors"
)

// ClassRepository handles database operations for classes and enrollments
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO classes (name, description, tutor_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		class.Name, class.Description, class.TutorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	class.ID = id
	return id, nil
}

// GetClassByID retrieves a class with its tutor (when assigned)
func (r *ClassRepository) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	class := &models.Class{}
	var tutorID, tutorUserID *int64
	var specialization, tutorName *string

	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.name, c.description, c.tutor_id, c.created_at, c.updated_at,
		       t.id, t.user_id, t.specialization, u.full_name
		FROM classes c
		LEFT JOIN tutors t ON c.tutor_id = t.id
		LEFT JOIN users u ON t.user_id = u.id
		WHERE c.id = $1`,
		id).Scan(
		&class.ID, &class.Name, &class.Description, &class.TutorID, &class.CreatedAt, &class.UpdatedAt,
		&tutorID, &tutorUserID, &specialization, &tutorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error fetching class: %w", err)
	}

	if tutorID != nil {
		class.Tutor = &models.Tutor{ID: *tutorID, User: &models.User{}}
		if tutorUserID != nil {
			class.Tutor.UserID = *tutorUserID
			class.Tutor.User.ID = *tutorUserID
		}
		if specialization != nil {
			class.Tutor.Specialization = *specialization
		}
		if tutorName != nil {
			class.Tutor.User.FullName = *tutorName
		}
	}

	return class, nil
}

// List returns classes with pagination, optionally filtered by tutor.
func (r *ClassRepository) List(ctx context.Context, tutorID *int64, offset uint64, limit int) ([]*models.Class, int64, error) {
	builder := squirrel.Select(
		"c.id", "c.name", "c.description", "c.tutor_id", "c.created_at", "c.updated_at", "u.full_name").
		From("classes c").
		LeftJoin("tutors t ON c.tutor_id = t.id").
		LeftJoin("users u ON t.user_id = u.id").
		OrderBy("c.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.Select("COUNT(*)").From("classes c").PlaceholderFormat(squirrel.Dollar)

	if tutorID != nil {
		builder = builder.Where("c.tutor_id = ?", *tutorID)
		countBuilder = countBuilder.Where("c.tutor_id = ?", *tutorID)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting classes: %w", err)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		var tutorName *string
		err := rows.Scan(
			&class.ID, &class.Name, &class.Description, &class.TutorID,
			&class.CreatedAt, &class.UpdatedAt, &tutorName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning class row: %w", err)
		}
		if tutorName != nil && class.TutorID != nil {
			class.Tutor = &models.Tutor{ID: *class.TutorID, User: &models.User{FullName: *tutorName}}
		}
		classes = append(classes, class)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, total, nil
}

// Update modifies a class
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classes
		SET name = $1, description = $2, tutor_id = $3, updated_at = NOW()
		WHERE id = $4`,
		class.Name, class.Description, class.TutorID, class.ID)
	if err != nil {
		return fmt.Errorf("error updating class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// Delete removes a class
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// EnrollStudent inserts a class/student pair. The unique constraint on
// the pair maps to ErrAlreadyEnrolled.
func (r *ClassRepository) EnrollStudent(ctx context.Context, classID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO class_students (class_id, student_id) VALUES ($1, $2)`,
		classID, studentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}
	return nil
}

// UnenrollStudent removes a class/student pair
func (r *ClassRepository) UnenrollStudent(ctx context.Context, classID, studentID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`,
		classID, studentID)
	if err != nil {
		return fmt.Errorf("error unenrolling student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ListStudents returns the students enrolled in a class
func (r *ClassRepository) ListStudents(ctx context.Context, classID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.specialization, u.id, u.email, u.full_name, u.created_at
		FROM class_students cs
		JOIN students s ON cs.student_id = s.id
		JOIN users u ON s.user_id = u.id
		WHERE cs.class_id = $1
		ORDER BY u.full_name`,
		classID)
	if err != nil {
		return nil, fmt.Errorf("error listing class students: %w", err)
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

// ListClassesForStudent returns the classes a student is enrolled in
func (r *ClassRepository) ListClassesForStudent(ctx context.Context, studentID int64) ([]*models.Class, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.description, c.tutor_id, c.created_at, c.updated_at
		FROM class_students cs
		JOIN classes c ON cs.class_id = c.id
		WHERE cs.student_id = $1
		ORDER BY c.name`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Description, &class.TutorID,
			&class.CreatedAt, &class.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// IsStudentEnrolled reports whether the student is enrolled in the class
func (r *ClassRepository) IsStudentEnrolled(ctx context.Context, classID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM class_students WHERE class_id = $1 AND student_id = $2)`,
		classID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}
