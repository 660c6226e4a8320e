package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// TimetableRepository handles database operations for timetable entries
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// Create inserts a new timetable entry
func (r *TimetableRepository) Create(ctx context.Context, entry *models.Timetable) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO timetables (class_id, date, location, schedule)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		entry.ClassID, entry.Date, entry.Location, entry.Schedule).Scan(&id, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating timetable entry: %w", err)
	}
	entry.ID = id
	return id, nil
}

// GetTimetableByID retrieves a timetable entry with its class
func (r *TimetableRepository) GetTimetableByID(ctx context.Context, id int64) (*models.Timetable, error) {
	entry := &models.Timetable{Class: &models.Class{}}
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.class_id, t.date, t.location, t.schedule, t.created_at, t.updated_at,
		       c.id, c.name, c.tutor_id
		FROM timetables t
		JOIN classes c ON t.class_id = c.id
		WHERE t.id = $1`,
		id).Scan(
		&entry.ID, &entry.ClassID, &entry.Date, &entry.Location, &entry.Schedule,
		&entry.CreatedAt, &entry.UpdatedAt,
		&entry.Class.ID, &entry.Class.Name, &entry.Class.TutorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableNotFound
		}
		return nil, fmt.Errorf("error fetching timetable entry: %w", err)
	}
	return entry, nil
}

// List returns timetable entries filtered by class and/or date range,
// ordered by date.
func (r *TimetableRepository) List(ctx context.Context, classID *int64, from, to *time.Time) ([]*models.Timetable, error) {
	builder := squirrel.Select(
		"t.id", "t.class_id", "t.date", "t.location", "t.schedule",
		"t.created_at", "t.updated_at", "c.name").
		From("timetables t").
		Join("classes c ON t.class_id = c.id").
		OrderBy("t.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if classID != nil {
		builder = builder.Where(squirrel.Eq{"t.class_id": *classID})
	}
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"t.date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"t.date": *to})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing timetable entries: %w", err)
	}
	defer rows.Close()

	return scanTimetables(rows)
}

// ListForStudent returns upcoming entries for every class the student is
// enrolled in, ordered by date.
func (r *TimetableRepository) ListForStudent(ctx context.Context, studentID int64, from *time.Time) ([]*models.Timetable, error) {
	builder := squirrel.Select(
		"t.id", "t.class_id", "t.date", "t.location", "t.schedule",
		"t.created_at", "t.updated_at", "c.name").
		From("timetables t").
		Join("classes c ON t.class_id = c.id").
		Join("class_students cs ON cs.class_id = c.id").
		Where(squirrel.Eq{"cs.student_id": studentID}).
		OrderBy("t.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"t.date": *from})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student timetable: %w", err)
	}
	defer rows.Close()

	return scanTimetables(rows)
}

// Update modifies a timetable entry
func (r *TimetableRepository) Update(ctx context.Context, entry *models.Timetable) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE timetables
		SET date = $1, location = $2, schedule = $3, updated_at = NOW()
		WHERE id = $4`,
		entry.Date, entry.Location, entry.Schedule, entry.ID)
	if err != nil {
		return fmt.Errorf("error updating timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}
	return nil
}

// Delete removes a timetable entry
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timetables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting timetable entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}
	return nil
}

func scanTimetables(rows pgx.Rows) ([]*models.Timetable, error) {
	var entries []*models.Timetable
	for rows.Next() {
		entry := &models.Timetable{Class: &models.Class{}}
		err := rows.Scan(
			&entry.ID, &entry.ClassID, &entry.Date, &entry.Location, &entry.Schedule,
			&entry.CreatedAt, &entry.UpdatedAt, &entry.Class.Name)
		if err != nil {
			return nil, fmt.Errorf("error scanning timetable row: %w", err)
		}
		entry.Class.ID = entry.ClassID
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timetable rows: %w", err)
	}
	return entries, nil
}
