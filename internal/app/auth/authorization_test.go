package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

type fakeResources struct {
	resource *models.Resource
	err      error
}

func (f *fakeResources) GetResourceByID(_ context.Context, _ int64) (*models.Resource, error) {
	return f.resource, f.err
}

type fakeClasses struct {
	class *models.Class
	err   error
}

func (f *fakeClasses) GetClassByID(_ context.Context, _ int64) (*models.Class, error) {
	return f.class, f.err
}

type fakePosts struct {
	posts    map[int64]*models.Post
	comments map[int64]*models.Comment
}

func (f *fakePosts) GetPostByID(_ context.Context, id int64) (*models.Post, error) {
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrPostNotFound
}

func (f *fakePosts) GetCommentByID(_ context.Context, id int64) (*models.Comment, error) {
	if c, ok := f.comments[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCommentNotFound
}

func adminIdentity() Identity {
	return Identity{UserID: 1, Role: models.RoleAdmin}
}

func tutorIdentity(userID, tutorID int64) Identity {
	return Identity{UserID: userID, Role: models.RoleTutor, SpecializationID: &tutorID}
}

func TestValidateClassOwnership(t *testing.T) {
	ownerID := int64(7)
	svc := NewAuthorizationService(nil, &fakeClasses{class: &models.Class{ID: 1, TutorID: &ownerID}}, nil)

	t.Run("admin bypasses ownership", func(t *testing.T) {
		assert.NoError(t, svc.ValidateClassOwnership(context.Background(), adminIdentity(), 1))
	})

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, svc.ValidateClassOwnership(context.Background(), tutorIdentity(10, 7), 1))
	})

	t.Run("other tutor denied", func(t *testing.T) {
		err := svc.ValidateClassOwnership(context.Background(), tutorIdentity(11, 8), 1)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unowned class denies every tutor", func(t *testing.T) {
		unowned := NewAuthorizationService(nil, &fakeClasses{class: &models.Class{ID: 2}}, nil)
		err := unowned.ValidateClassOwnership(context.Background(), tutorIdentity(10, 7), 2)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("missing class error passes through", func(t *testing.T) {
		missing := NewAuthorizationService(nil, &fakeClasses{err: apperrors.ErrClassNotFound}, nil)
		err := missing.ValidateClassOwnership(context.Background(), tutorIdentity(10, 7), 3)
		assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
	})
}

func TestValidateResourceOwnership(t *testing.T) {
	ownerID := int64(4)
	svc := NewAuthorizationService(&fakeResources{resource: &models.Resource{ID: 1, TutorID: &ownerID}}, nil, nil)

	assert.NoError(t, svc.ValidateResourceOwnership(context.Background(), adminIdentity(), 1))
	assert.NoError(t, svc.ValidateResourceOwnership(context.Background(), tutorIdentity(2, 4), 1))
	assert.ErrorIs(t,
		svc.ValidateResourceOwnership(context.Background(), tutorIdentity(3, 5), 1),
		apperrors.ErrPermissionDenied)

	// admin-authored resources carry no owner; only admins may touch them
	adminOwned := NewAuthorizationService(&fakeResources{resource: &models.Resource{ID: 2}}, nil, nil)
	assert.NoError(t, adminOwned.ValidateResourceOwnership(context.Background(), adminIdentity(), 2))
	assert.ErrorIs(t,
		adminOwned.ValidateResourceOwnership(context.Background(), tutorIdentity(2, 4), 2),
		apperrors.ErrPermissionDenied)
}

func TestValidatePostOwnership(t *testing.T) {
	posts := &fakePosts{posts: map[int64]*models.Post{
		1: {ID: 1, UserID: 20},
	}}
	svc := NewAuthorizationService(nil, nil, posts)

	author := Identity{UserID: 20, Role: models.RoleStudent}
	other := Identity{UserID: 21, Role: models.RoleStudent}

	assert.NoError(t, svc.ValidatePostOwnership(context.Background(), adminIdentity(), 1))
	assert.NoError(t, svc.ValidatePostOwnership(context.Background(), author, 1))
	assert.ErrorIs(t, svc.ValidatePostOwnership(context.Background(), other, 1), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.ValidatePostOwnership(context.Background(), author, 99), apperrors.ErrPostNotFound)
}

func TestValidateCommentDeletion(t *testing.T) {
	posts := &fakePosts{
		posts: map[int64]*models.Post{
			1: {ID: 1, UserID: 20},
		},
		comments: map[int64]*models.Comment{
			5: {ID: 5, PostID: 1, UserID: 30},
		},
	}
	svc := NewAuthorizationService(nil, nil, posts)

	commentAuthor := Identity{UserID: 30, Role: models.RoleStudent}
	postAuthor := Identity{UserID: 20, Role: models.RoleStudent}
	bystander := Identity{UserID: 40, Role: models.RoleStudent}

	assert.NoError(t, svc.ValidateCommentDeletion(context.Background(), adminIdentity(), 5))
	assert.NoError(t, svc.ValidateCommentDeletion(context.Background(), commentAuthor, 5))
	assert.NoError(t, svc.ValidateCommentDeletion(context.Background(), postAuthor, 5))
	assert.ErrorIs(t, svc.ValidateCommentDeletion(context.Background(), bystander, 5), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.ValidateCommentDeletion(context.Background(), bystander, 99), apperrors.ErrCommentNotFound)
}

func TestIdentityHelpers(t *testing.T) {
	assert.True(t, adminIdentity().IsAdmin())
	assert.False(t, tutorIdentity(1, 2).IsAdmin())

	spec := int64(3)
	assert.True(t, ownedBy(&spec, tutorIdentity(1, 3)))
	assert.False(t, ownedBy(&spec, tutorIdentity(1, 4)))
	assert.False(t, ownedBy(nil, tutorIdentity(1, 3)))
	assert.False(t, ownedBy(&spec, adminIdentity()))
}
