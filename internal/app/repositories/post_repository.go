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

// PostRepository handles database operations for posts, likes and
// comments
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (user_id, content, hashtags)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		post.UserID, post.Content, post.Hashtags).Scan(&id, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}
	post.ID = id
	return id, nil
}

// GetPostByID retrieves a post with its author and comments
func (r *PostRepository) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{Author: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.content, p.hashtags, p.likes, p.liked_by, p.created_at, p.updated_at,
		       u.id, u.full_name
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`,
		id).Scan(
		&post.ID, &post.UserID, &post.Content, &post.Hashtags, &post.Likes, &post.LikedBy,
		&post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error fetching post: %w", err)
	}

	comments, err := r.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		post.Comments = append(post.Comments, *c)
	}

	return post, nil
}

// List returns posts with pagination, optionally filtered by hashtag.
// Comments are not loaded for listings.
func (r *PostRepository) List(ctx context.Context, hashtag string, offset uint64, limit int) ([]*models.Post, int64, error) {
	builder := squirrel.Select(
		"p.id", "p.user_id", "p.content", "p.hashtags", "p.likes", "p.liked_by",
		"p.created_at", "p.updated_at", "u.full_name").
		From("posts p").
		Join("users u ON p.user_id = u.id").
		OrderBy("p.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.Select("COUNT(*)").From("posts p").PlaceholderFormat(squirrel.Dollar)

	if hashtag != "" {
		builder = builder.Where("? = ANY(p.hashtags)", hashtag)
		countBuilder = countBuilder.Where("? = ANY(p.hashtags)", hashtag)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building count SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{Author: &models.User{}}
		err := rows.Scan(
			&post.ID, &post.UserID, &post.Content, &post.Hashtags, &post.Likes, &post.LikedBy,
			&post.CreatedAt, &post.UpdatedAt, &post.Author.FullName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		post.Author.ID = post.UserID
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, total, nil
}

// Update modifies a post's content and hashtags
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE posts SET content = $1, hashtags = $2, updated_at = NOW() WHERE id = $3`,
		post.Content, post.Hashtags, post.ID)
	if err != nil {
		return fmt.Errorf("error updating post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// Delete removes a post (comments cascade)
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// ToggleLike flips the caller's like on a post in one atomic statement.
// The membership set and the counter are derived from the same array
// expression, so the counter always equals the set cardinality no matter
// how toggles interleave. Returns the new likes count and whether the
// caller now likes the post.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID int64) (likes int, liked bool, err error) {
	err = r.db.QueryRow(ctx, `
		UPDATE posts
		SET liked_by = CASE
		        WHEN $2 = ANY(liked_by) THEN array_remove(liked_by, $2)
		        ELSE array_append(liked_by, $2)
		    END,
		    likes = CASE
		        WHEN $2 = ANY(liked_by) THEN cardinality(array_remove(liked_by, $2))
		        ELSE cardinality(array_append(liked_by, $2))
		    END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING likes, $2 = ANY(liked_by)`,
		postID, userID).Scan(&likes, &liked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, apperrors.ErrPostNotFound
		}
		return 0, false, fmt.Errorf("error toggling like: %w", err)
	}
	return likes, liked, nil
}

// CreateComment inserts a comment on a post
func (r *PostRepository) CreateComment(ctx context.Context, comment *models.Comment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.PostID, comment.UserID, comment.Content).Scan(&id, &comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating comment: %w", err)
	}
	comment.ID = id
	return id, nil
}

// GetCommentByID retrieves a comment by ID
func (r *PostRepository) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment := &models.Comment{}
	err := r.db.QueryRow(ctx, `
		SELECT id, post_id, user_id, content, created_at
		FROM comments WHERE id = $1`,
		id).Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error fetching comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a post's comments with author names, oldest first
func (r *PostRepository) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at, u.full_name
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`,
		postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{Author: &models.User{}}
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.UserID, &comment.Content,
			&comment.CreatedAt, &comment.Author.FullName)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comment.Author.ID = comment.UserID
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment
func (r *PostRepository) DeleteComment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
