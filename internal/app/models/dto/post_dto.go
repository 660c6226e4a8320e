package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// CreatePostRequest represents a post creation request
type CreatePostRequest struct {
	Content  string   `json:"content" binding:"required,min=1,max=5000"`
	Hashtags []string `json:"hashtags" binding:"omitempty,max=10,dive,hashtag"`
}

// UpdatePostRequest represents a post update request
type UpdatePostRequest struct {
	Content  string   `json:"content" binding:"required,min=1,max=5000"`
	Hashtags []string `json:"hashtags" binding:"omitempty,max=10,dive,hashtag"`
}

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentResponse is the public comment representation
type CommentResponse struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	UserID     int64     `json:"userId"`
	AuthorName string    `json:"authorName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromComment converts a models.Comment to a CommentResponse
func FromComment(comment *models.Comment) CommentResponse {
	if comment == nil {
		return CommentResponse{}
	}
	resp := CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		resp.AuthorName = comment.Author.FullName
	}
	return resp
}

// PostResponse is the public post representation. Liked reflects whether
// the requesting user currently likes the post.
type PostResponse struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"userId"`
	AuthorName string            `json:"authorName,omitempty"`
	Content    string            `json:"content"`
	Hashtags   []string          `json:"hashtags"`
	Likes      int               `json:"likes"`
	Liked      bool              `json:"liked"`
	Comments   []CommentResponse `json:"comments"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// FromPost converts a models.Post to a PostResponse from the viewpoint of
// the given user.
func FromPost(post *models.Post, viewerID int64) PostResponse {
	if post == nil {
		return PostResponse{}
	}

	resp := PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		Hashtags:  post.Hashtags,
		Likes:     post.Likes,
		Liked:     post.LikedByUser(viewerID),
		Comments:  make([]CommentResponse, 0, len(post.Comments)),
		CreatedAt: post.CreatedAt,
	}
	if resp.Hashtags == nil {
		resp.Hashtags = []string{}
	}
	if post.Author != nil {
		resp.AuthorName = post.Author.FullName
	}
	for i := range post.Comments {
		resp.Comments = append(resp.Comments, FromComment(&post.Comments[i]))
	}
	return resp
}

// LikeResponse carries the post state after a like toggle.
type LikeResponse struct {
	PostID int64 `json:"postId"`
	Likes  int   `json:"likes"`
	Liked  bool  `json:"liked"`
}

// PostListResponse is a paginated post listing
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PaginationInfo `json:"pagination"`
}
