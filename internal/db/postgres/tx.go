package postgres

import (
	"Bulletin/internal/core/users"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repositories translate into domain errors
const (
	foreignKeyViolation pq.ErrorCode = "23503"
	uniqueViolation     pq.ErrorCode = "23505"
)

// withTx runs fn inside a READ COMMITTED transaction and commits if fn
// returns nil. The deferred rollback releases the connection on every other
// path, including panics and context cancellation.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isConstraintViolation reports whether err is a Postgres error with the given
// code on the named constraint. An empty constraint matches any.
func isConstraintViolation(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == code && (constraint == "" || pqErr.Constraint == constraint)
}

// lockPost takes the per-post lock every counter mutation serialises on.
// FOR NO KEY UPDATE still lets concurrent inserts of child rows pass their
// foreign key checks, but blocks other counter writers and post deletion.
func lockPost(ctx context.Context, tx *sql.Tx, postID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR NO KEY UPDATE`, postID).Scan(&id)
	if err != nil {
		return err
	}
	return nil
}

// lockUser takes a KEY SHARE lock on the acting user before any post lock.
// Account deletion locks the user row FOR UPDATE before locking posts, so
// taking the user first here keeps a single user-then-post lock order and
// stops new likes or comments from landing after deletion counted them.
func lockUser(ctx context.Context, tx *sql.Tx, userID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR KEY SHARE`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return users.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock user: %w", err)
	}
	return nil
}
