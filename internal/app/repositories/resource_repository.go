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
)

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a new resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO resources (title, description, file_path, tutor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		resource.Title, resource.Description, resource.FilePath, resource.TutorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating resource: %w", err)
	}
	resource.ID = id
	return id, nil
}

// GetResourceByID retrieves a resource with its owning tutor (when set)
func (r *ResourceRepository) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	resource := &models.Resource{}
	var tutorUserID *int64
	var tutorName *string

	err := r.db.QueryRow(ctx, `
		SELECT r.id, r.title, r.description, r.file_path, r.tutor_id, r.created_at, r.updated_at,
		       t.user_id, u.full_name
		FROM resources r
		LEFT JOIN tutors t ON r.tutor_id = t.id
		LEFT JOIN users u ON t.user_id = u.id
		WHERE r.id = $1`,
		id).Scan(
		&resource.ID, &resource.Title, &resource.Description, &resource.FilePath,
		&resource.TutorID, &resource.CreatedAt, &resource.UpdatedAt,
		&tutorUserID, &tutorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error fetching resource: %w", err)
	}

	if resource.TutorID != nil && tutorUserID != nil {
		resource.Tutor = &models.Tutor{
			ID:     *resource.TutorID,
			UserID: *tutorUserID,
			User:   &models.User{ID: *tutorUserID},
		}
		if tutorName != nil {
			resource.Tutor.User.FullName = *tutorName
		}
	}

	return resource, nil
}

// List returns resources with pagination, optionally filtered by tutor
func (r *ResourceRepository) List(ctx context.Context, tutorID *int64, offset uint64, limit int) ([]*models.Resource, int64, error) {
	builder := squirrel.Select(
		"r.id", "r.title", "r.description", "r.file_path", "r.tutor_id",
		"r.created_at", "r.updated_at", "u.full_name").
		From("resources r").
		LeftJoin("tutors t ON r.tutor_id = t.id").
		LeftJoin("users u ON t.user_id = u.id").
		OrderBy("r.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.Select("COUNT(*)").From("resources r").PlaceholderFormat(squirrel.Dollar)

	if tutorID != nil {
		builder = builder.Where("r.tutor_id = ?", *tutorID)
		countBuilder = countBuilder.Where("r.tutor_id = ?", *tutorID)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting resources: %w", err)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		resource := &models.Resource{}
		var tutorName *string
		err := rows.Scan(
			&resource.ID, &resource.Title, &resource.Description, &resource.FilePath,
			&resource.TutorID, &resource.CreatedAt, &resource.UpdatedAt, &tutorName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning resource row: %w", err)
		}
		if resource.TutorID != nil && tutorName != nil {
			resource.Tutor = &models.Tutor{ID: *resource.TutorID, User: &models.User{FullName: *tutorName}}
		}
		resources = append(resources, resource)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, total, nil
}

// Update modifies resource metadata and, when filePath is non-nil, the
// stored file reference
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE resources
		SET title = $1, description = $2, file_path = $3, updated_at = NOW()
		WHERE id = $4`,
		resource.Title, resource.Description, resource.FilePath, resource.ID)
	if err != nil {
		return fmt.Errorf("error updating resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Delete removes a resource row and returns the stored file path so the
// caller can clean the file up afterwards. The row is the source of
// truth: it goes first, the file removal is best effort.
func (r *ResourceRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var filePath *string
	err := r.db.QueryRow(ctx, `
		DELETE FROM resources WHERE id = $1 RETURNING file_path`, id).Scan(&filePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error deleting resource: %w", err)
	}
	return filePath, nil
}
