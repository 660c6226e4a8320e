package services

import (
	"context"
	"fmt"
	"strings"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// PostService handles the community feed: posts, likes and comments.
type PostService struct {
	postRepo *repositories.PostRepository
	authz    *appauth.AuthorizationService
}

// NewPostService creates a new PostService
func NewPostService(postRepo *repositories.PostRepository, authz *appauth.AuthorizationService) *PostService {
	return &PostService{
		postRepo: postRepo,
		authz:    authz,
	}
}

// normalizeHashtags lowercases tags and strips a leading '#'
func normalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// CreatePost creates a post owned by the caller
func (s *PostService) CreatePost(ctx context.Context, identity appauth.Identity, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &models.Post{
		UserID:   identity.UserID,
		Content:  req.Content,
		Hashtags: normalizeHashtags(req.Hashtags),
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return s.GetPost(ctx, identity, id)
}

// GetPost retrieves a post with comments, from the caller's viewpoint
func (s *PostService) GetPost(ctx context.Context, identity appauth.Identity, id int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromPost(post, identity.UserID)
	return &resp, nil
}

// ListPosts returns the feed with pagination, optionally filtered by
// hashtag.
func (s *PostService) ListPosts(ctx context.Context, identity appauth.Identity, hashtag string, page, size int) (*dto.PostListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	hashtag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hashtag), "#"))

	posts, total, err := s.postRepo.List(ctx, hashtag, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	resp := &dto.PostListResponse{
		Posts:      make([]dto.PostResponse, 0, len(posts)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, dto.FromPost(post, identity.UserID))
	}
	return resp, nil
}

// UpdatePost modifies a post. Only the author or an admin may update.
func (s *PostService) UpdatePost(ctx context.Context, identity appauth.Identity, id int64, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	if err := s.authz.ValidatePostOwnership(ctx, identity, id); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Content = req.Content
	post.Hashtags = normalizeHashtags(req.Hashtags)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, identity, id)
}

// DeletePost removes a post and its comments
func (s *PostService) DeletePost(ctx context.Context, identity appauth.Identity, id int64) error {
	if err := s.authz.ValidatePostOwnership(ctx, identity, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// ToggleLike flips the caller's like on a post and returns the resulting
// state.
func (s *PostService) ToggleLike(ctx context.Context, identity appauth.Identity, postID int64) (*dto.LikeResponse, error) {
	likes, liked, err := s.postRepo.ToggleLike(ctx, postID, identity.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResponse{
		PostID: postID,
		Likes:  likes,
		Liked:  liked,
	}, nil
}

// AddComment comments on a post as the caller
func (s *PostService) AddComment(ctx context.Context, identity appauth.Identity, postID int64, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  identity.UserID,
		Content: req.Content,
	}
	if _, err := s.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	resp := dto.FromComment(comment)
	return &resp, nil
}

// DeleteComment removes a comment. The comment author, the post author
// and admins may delete.
func (s *PostService) DeleteComment(ctx context.Context, identity appauth.Identity, commentID int64) error {
	if err := s.authz.ValidateCommentDeletion(ctx, identity, commentID); err != nil {
		return err
	}
	return s.postRepo.DeleteComment(ctx, commentID)
}
