package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/backend/internal/app/models"
)

func TestFromPost(t *testing.T) {
	now := time.Now()
	post := &models.Post{
		ID:       1,
		UserID:   10,
		Content:  "studying derivatives",
		Hashtags: []string{"calculus"},
		Likes:    2,
		LikedBy:  []int64{10, 11},
		Author:   &models.User{ID: 10, FullName: "Alice"},
		Comments: []models.Comment{
			{ID: 1, PostID: 1, UserID: 11, Content: "nice", CreatedAt: now},
		},
		CreatedAt: now,
	}

	t.Run("viewer with like", func(t *testing.T) {
		resp := FromPost(post, 11)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Alice", resp.AuthorName)
		assert.Equal(t, 2, resp.Likes)
		assert.True(t, resp.Liked)
		assert.Len(t, resp.Comments, 1)
		assert.Equal(t, "nice", resp.Comments[0].Content)
	})

	t.Run("viewer without like", func(t *testing.T) {
		resp := FromPost(post, 99)
		assert.False(t, resp.Liked)
	})

	t.Run("nil hashtags become empty slice", func(t *testing.T) {
		resp := FromPost(&models.Post{ID: 2}, 1)
		assert.NotNil(t, resp.Hashtags)
		assert.Empty(t, resp.Hashtags)
	})

	t.Run("nil post", func(t *testing.T) {
		assert.Equal(t, PostResponse{}, FromPost(nil, 1))
	})
}

func TestLikedByUser(t *testing.T) {
	post := &models.Post{LikedBy: []int64{1, 2, 3}}
	assert.True(t, post.LikedByUser(2))
	assert.False(t, post.LikedByUser(4))
	assert.False(t, (&models.Post{}).LikedByUser(1))
}
