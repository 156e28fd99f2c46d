package postgres

import (
	"Bulletin/internal/core/comments"
	"Bulletin/internal/core/posts"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo_CreateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)

	comment, count, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "first"})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "author", comment.Nickname)
	assert.Equal(t, int64(1), count)

	_, count, err = repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "second"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	gotPostID, count, err := repo.Delete(ctx, comment.ID, author)
	require.NoError(t, err)
	assert.Equal(t, postID, gotPostID)
	assert.Equal(t, int64(1), count)

	_, commentsCount := assertCountersConsistent(t, db, postID)
	assert.Equal(t, int64(1), commentsCount)
}

func TestCommentRepo_Create_PostNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	author := createTestUser(t, db, "author")

	_, _, err := repo.Create(context.Background(), &comments.Comment{PostID: 99999, AuthorID: author, Content: "hello"})
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&n))
	assert.Zero(t, n, "no orphaned comment row")
}

func TestCommentRepo_Delete_Forbidden(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	postID := createTestPost(t, db, author)

	comment, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "mine"})
	require.NoError(t, err)

	_, _, err = repo.Delete(ctx, comment.ID, other)
	assert.ErrorIs(t, err, comments.ErrNotAuthorized)

	_, _, err = repo.Delete(ctx, 99999, author)
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)

	_, commentsCount := assertCountersConsistent(t, db, postID)
	assert.Equal(t, int64(1), commentsCount)
}

func TestCommentRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	postID := createTestPost(t, db, author)

	comment, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "before"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, comment.ID, author, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.Equal(t, "author", updated.Nickname)

	_, err = repo.Update(ctx, comment.ID, other, "hijack")
	assert.ErrorIs(t, err, comments.ErrNotAuthorized)

	_, err = repo.Update(ctx, 99999, author, "ghost")
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)
}

func TestCommentRepo_ListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)
	emptyPostID := createTestPost(t, db, author)

	for i := 0; i < 3; i++ {
		_, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
	}

	list, err := repo.ListByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c0", list[0].Content)
	assert.Equal(t, "c2", list[2].Content)

	list, err = repo.ListByPost(ctx, emptyPostID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.ListByPost(ctx, 99999)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestCommentRepo_ConcurrentAdds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)

	const numComments = 25
	var wg sync.WaitGroup
	counts := make(chan int64, numComments)
	for i := 0; i < numComments; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, count, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: fmt.Sprintf("comment %d", i)})
			if assert.NoError(t, err) {
				counts <- count
			}
		}(i)
	}
	wg.Wait()
	close(counts)

	// Each add sees every earlier committed add, so the returned counts are 1..N
	seen := map[int64]bool{}
	for c := range counts {
		assert.False(t, seen[c], "count %d returned twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, numComments)

	_, commentsCount := assertCountersConsistent(t, db, postID)
	assert.Equal(t, int64(numComments), commentsCount)
}

func TestCommentRepo_ConcurrentAddAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)

	existing := make([]int64, 10)
	for i := range existing {
		c, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "seed"})
		require.NoError(t, err)
		existing[i] = c.ID
	}

	var wg sync.WaitGroup
	for i := range existing {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_, _, err := repo.Delete(ctx, id, author)
			assert.NoError(t, err)
		}(existing[i])
		go func() {
			defer wg.Done()
			_, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "new"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, commentsCount := assertCountersConsistent(t, db, postID)
	assert.Equal(t, int64(len(existing)), commentsCount)
}

func TestCommentRepo_DeleteRacesPostDeletion(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)
	comment, _, err := commentRepo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "x"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var deleteErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, deleteErr = commentRepo.Delete(ctx, comment.ID, author)
	}()
	go func() {
		defer wg.Done()
		_, err := postRepo.Delete(ctx, postID, author)
		assert.NoError(t, err)
	}()
	wg.Wait()

	// Either order is fine; neither may deadlock or fail with a storage error
	if deleteErr != nil {
		assert.ErrorIs(t, deleteErr, comments.ErrCommentNotFound)
	}
}

func TestCommentRepo_AddThenDeleteRestoresCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	postID := createTestPost(t, db, author)
	_, before, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "existing"})
	require.NoError(t, err)

	comment, during, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "temporary"})
	require.NoError(t, err)
	assert.Equal(t, before+1, during)

	_, after, err := repo.Delete(ctx, comment.ID, author)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCommentRepo_ForbiddenDeleteKeepsCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	stranger := createTestUser(t, db, "stranger")
	postID := createTestPost(t, db, author)

	var target *comments.Comment
	for i := 0; i < 3; i++ {
		c, _, err := repo.Create(ctx, &comments.Comment{PostID: postID, AuthorID: author, Content: "c"})
		require.NoError(t, err)
		target = c
	}

	_, _, err := repo.Delete(ctx, target.ID, stranger)
	assert.ErrorIs(t, err, comments.ErrNotAuthorized)

	_, commentsCount := assertCountersConsistent(t, db, postID)
	assert.Equal(t, int64(3), commentsCount)
}
