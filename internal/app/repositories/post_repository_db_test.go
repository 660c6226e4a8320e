package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/app/models"
)

// likeState reads the stored counter and the array cardinality side by
// side so tests can assert they never drift apart.
func likeState(t *testing.T, pool *pgxpool.Pool, postID int64) (likes, members int) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT likes, cardinality(liked_by) FROM posts WHERE id = $1`,
		postID).Scan(&likes, &members)
	require.NoError(t, err)
	return likes, members
}

func TestToggleLikeKeepsCounterInSync(t *testing.T) {
	pool := testPool(t)
	repo := NewPostRepository(pool)
	ctx := context.Background()

	authorID := createTestUser(t, pool, "author@tutorhub.io")
	postID, err := repo.Create(ctx, &models.Post{UserID: authorID, Content: "office hours moved to 3pm"})
	require.NoError(t, err)

	var viewers []int64
	for i := 0; i < 3; i++ {
		viewers = append(viewers, createTestUser(t, pool, fmt.Sprintf("viewer%d@tutorhub.io", i)))
	}

	for i, viewerID := range viewers {
		likes, liked, err := repo.ToggleLike(ctx, postID, viewerID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, i+1, likes)

		stored, members := likeState(t, pool, postID)
		assert.Equal(t, stored, members, "likes counter must equal liked_by cardinality")
		assert.Equal(t, i+1, stored)
	}

	// Un-liking in a different order keeps the counter and the set in step.
	likes, liked, err := repo.ToggleLike(ctx, postID, viewers[1])
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 2, likes)

	stored, members := likeState(t, pool, postID)
	assert.Equal(t, stored, members)
	assert.Equal(t, 2, stored)
}

func TestToggleLikeTwiceRestoresOriginalState(t *testing.T) {
	pool := testPool(t)
	repo := NewPostRepository(pool)
	ctx := context.Background()

	authorID := createTestUser(t, pool, "author@tutorhub.io")
	viewerID := createTestUser(t, pool, "viewer@tutorhub.io")
	postID, err := repo.Create(ctx, &models.Post{UserID: authorID, Content: "new algebra worksheet posted"})
	require.NoError(t, err)

	likes, liked, err := repo.ToggleLike(ctx, postID, viewerID)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, likes)

	likes, liked, err = repo.ToggleLike(ctx, postID, viewerID)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, likes)

	stored, members := likeState(t, pool, postID)
	assert.Equal(t, 0, stored)
	assert.Equal(t, 0, members)

	post, err := repo.GetPostByID(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, post.LikedBy)
}
