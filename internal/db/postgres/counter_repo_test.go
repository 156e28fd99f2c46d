package postgres

import (
	"Bulletin/internal/core/posts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRepo_RecountHealsDrift(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCounterRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	driftedID := createTestPost(t, db, author)
	healthyID := createTestPost(t, db, author)

	_, err := likeRepo.SetLike(ctx, driftedID, author, true)
	require.NoError(t, err)
	_, err = likeRepo.SetLike(ctx, healthyID, author, true)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE posts SET like_count = 7, comments_count = 3 WHERE id = $1`, driftedID)
	require.NoError(t, err)

	fixed, err := repo.RecountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fixed)

	assertCountersConsistent(t, db, driftedID)
	assertCountersConsistent(t, db, healthyID)

	fixed, err = repo.RecountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}

func TestCounterRepo_RecountSinglePost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCounterRepository(db)
	ctx := context.Background()

	postID := createTestPost(t, db, createTestUser(t, db, "author"))
	_, err := db.Exec(`UPDATE posts SET comments_count = 5 WHERE id = $1`, postID)
	require.NoError(t, err)

	counters, err := repo.Recount(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counters.CommentsCount)
	assert.Equal(t, int64(0), counters.LikeCount)

	_, err = repo.Recount(ctx, 99999)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}
