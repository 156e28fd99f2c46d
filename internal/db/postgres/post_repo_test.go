package postgres

import (
	"Bulletin/internal/core/comments"
	"Bulletin/internal/core/posts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepo_CreateGetList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "writer")

	post, err := repo.Create(ctx, &posts.Post{Title: "Hello", Content: "Hello world body", AuthorID: &author, Image: "posts/a.jpg"})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "writer", post.Nickname)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "posts/a.jpg", got.Image)
	assert.True(t, got.IsAuthor(author))

	second, err := repo.Create(ctx, &posts.Post{Title: "Second", Content: "Second post body", AuthorID: &author})
	require.NoError(t, err)

	list, total, err := repo.List(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, "", list[0].Image)

	_, err = repo.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	ghost := int64(99999)
	_, err = repo.Create(ctx, &posts.Post{Title: "x", Content: "y", AuthorID: &ghost})
	assert.ErrorIs(t, err, posts.ErrAuthorNotFound)
}

func TestPostRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "other")

	post, err := repo.Create(ctx, &posts.Post{Title: "Old", Content: "Old content here", AuthorID: &author, Image: "posts/old.jpg"})
	require.NoError(t, err)

	title := "New"
	updated, replaced, err := repo.Update(ctx, post.ID, author, posts.PostChanges{Title: &title, Image: "posts/new.jpg", SetImage: true})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Old content here", updated.Content)
	assert.Equal(t, "posts/new.jpg", updated.Image)
	assert.Equal(t, "posts/old.jpg", replaced)

	updated, replaced, err = repo.Update(ctx, post.ID, author, posts.PostChanges{SetImage: true})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Image)
	assert.Equal(t, "posts/new.jpg", replaced)

	_, _, err = repo.Update(ctx, post.ID, other, posts.PostChanges{Title: &title})
	assert.ErrorIs(t, err, posts.ErrNotAuthorized)

	_, _, err = repo.Update(ctx, 99999, author, posts.PostChanges{Title: &title})
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestPostRepo_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "other")
	postID := createTestPost(t, db, author)

	_, err := likeRepo.SetLike(ctx, postID, other, true)
	require.NoError(t, err)
	_, _, err = commentRepo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: other, Content: "hi"})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, postID, other)
	assert.ErrorIs(t, err, posts.ErrNotAuthorized)

	_, err = repo.Delete(ctx, postID, author)
	require.NoError(t, err)

	var likesLeft, commentsLeft int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&likesLeft))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&commentsLeft))
	assert.Zero(t, likesLeft)
	assert.Zero(t, commentsLeft)

	_, err = repo.Delete(ctx, postID, author)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestPostRepo_Views(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	postID := createTestPost(t, db, createTestUser(t, db, "writer"))

	views, err := repo.IncrementViews(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = repo.IncrementViews(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	views, err = repo.GetViews(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	_, err = repo.IncrementViews(ctx, 99999)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	_, err = repo.GetViews(ctx, 99999)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}
