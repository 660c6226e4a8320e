package auth

import (
	"context"
	"errors"

	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// resourceGetter is the slice of the resource repository ownership checks
// need.
type resourceGetter interface {
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
}

// classGetter is the slice of the class repository ownership checks need.
type classGetter interface {
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
}

// postGetter is the slice of the post repository ownership checks need.
type postGetter interface {
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
}

// AuthorizationService evaluates ownership predicates over the identity
// attached by the authentication gate. Admins bypass every ownership
// check; a null owner never matches any caller.
type AuthorizationService struct {
	resources resourceGetter
	classes   classGetter
	posts     postGetter
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(resources resourceGetter, classes classGetter, posts postGetter) *AuthorizationService {
	return &AuthorizationService{
		resources: resources,
		classes:   classes,
		posts:     posts,
	}
}

// ownedBy checks a nullable owner id against the caller's specialization.
func ownedBy(ownerID *int64, identity Identity) bool {
	if ownerID == nil || identity.SpecializationID == nil {
		return false
	}
	return *ownerID == *identity.SpecializationID
}

// ValidateResourceOwnership fails with ErrResourceNotFound when the
// resource is absent and ErrPermissionDenied when the caller does not own
// it. Admin-authored resources (null owner) are only modifiable by admins.
func (s *AuthorizationService) ValidateResourceOwnership(ctx context.Context, identity Identity, resourceID int64) error {
	if identity.IsAdmin() {
		return nil
	}

	resource, err := s.resources.GetResourceByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if !ownedBy(resource.TutorID, identity) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateClassOwnership checks that the caller owns the class.
func (s *AuthorizationService) ValidateClassOwnership(ctx context.Context, identity Identity, classID int64) error {
	if identity.IsAdmin() {
		return nil
	}

	class, err := s.classes.GetClassByID(ctx, classID)
	if err != nil {
		return err
	}

	if !ownedBy(class.TutorID, identity) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidatePostOwnership checks that the caller authored the post. Post
// ownership is keyed by user id, not by specialization.
func (s *AuthorizationService) ValidatePostOwnership(ctx context.Context, identity Identity, postID int64) error {
	if identity.IsAdmin() {
		return nil
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != identity.UserID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCommentDeletion allows the comment author, the post author, or
// an admin to delete a comment.
func (s *AuthorizationService) ValidateCommentDeletion(ctx context.Context, identity Identity, commentID int64) error {
	if identity.IsAdmin() {
		return nil
	}

	comment, err := s.posts.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID == identity.UserID {
		return nil
	}

	post, err := s.posts.GetPostByID(ctx, comment.PostID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}
	if post.UserID == identity.UserID {
		return nil
	}

	return apperrors.ErrPermissionDenied
}
