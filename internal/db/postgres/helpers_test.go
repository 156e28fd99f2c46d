package postgres

import (
	"Bulletin/internal/db/migrations"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped without a database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	db.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db), "Failed to run migrations")

	_, err = db.Exec(`TRUNCATE likes, comments, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *sql.DB, nickname string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO users (email, password_hash, nickname)
		VALUES ($1, 'x', $2)
		RETURNING id`,
		fmt.Sprintf("%s@example.com", nickname), nickname,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestPost(t *testing.T, db *sql.DB, authorID int64) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(`
		INSERT INTO posts (title, content, author_id, nickname)
		SELECT 'Test post', 'Test post content', id, nickname FROM users WHERE id = $1
		RETURNING id`, authorID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// assertCountersConsistent checks the denormalized counters against the child rows
func assertCountersConsistent(t *testing.T, db *sql.DB, postID int64) (likeCount, commentsCount int64) {
	t.Helper()
	var actualLikes, actualComments int64
	err := db.QueryRow(`
		SELECT p.like_count, p.comments_count,
		       (SELECT COUNT(*) FROM likes WHERE post_id = p.id),
		       (SELECT COUNT(*) FROM comments WHERE post_id = p.id)
		FROM posts p WHERE p.id = $1`, postID,
	).Scan(&likeCount, &commentsCount, &actualLikes, &actualComments)
	require.NoError(t, err)
	require.Equal(t, actualLikes, likeCount, "like_count drifted from likes rows")
	require.Equal(t, actualComments, commentsCount, "comments_count drifted from comment rows")
	return likeCount, commentsCount
}
