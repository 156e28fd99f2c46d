package postgres

import (
	"Bulletin/internal/core/likes"
	"Bulletin/internal/core/posts"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// SetLike applies a like or unlike and the matching counter change in one
// transaction. The counter moves only when the like row was actually
// inserted or deleted, so replays and double clicks are no-ops.
func (r *postgresLikeRepo) SetLike(ctx context.Context, postID, userID int64, liked bool) (*likes.LikeStatus, error) {
	status := &likes.LikeStatus{PostID: postID}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockUser(ctx, tx, userID); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx,
			`SELECT like_count FROM posts WHERE id = $1 FOR NO KEY UPDATE`, postID,
		).Scan(&status.LikeCount)
		if errors.Is(err, sql.ErrNoRows) {
			return posts.ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var result sql.Result
		if liked {
			result, err = tx.ExecContext(ctx, `
				INSERT INTO likes (post_id, user_id)
				VALUES ($1, $2)
				ON CONFLICT (post_id, user_id) DO NOTHING`,
				postID, userID)
		} else {
			result, err = tx.ExecContext(ctx,
				`DELETE FROM likes WHERE post_id = $1 AND user_id = $2`,
				postID, userID)
		}
		if err != nil {
			return fmt.Errorf("failed to write like: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check like result: %w", err)
		}

		if affected == 1 {
			update := `UPDATE posts SET like_count = like_count + 1 WHERE id = $1 RETURNING like_count`
			if !liked {
				update = `UPDATE posts SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1 RETURNING like_count`
			}
			if err := tx.QueryRowContext(ctx, update, postID).Scan(&status.LikeCount); err != nil {
				return fmt.Errorf("failed to update like count: %w", err)
			}
			status.Changed = true
		}

		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`,
			postID, userID,
		).Scan(&status.Liked)
		if err != nil {
			return fmt.Errorf("failed to read like status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// GetStatus reads the like count and whether userID likes the post.
// userID 0 never matches a like row.
func (r *postgresLikeRepo) GetStatus(ctx context.Context, postID, userID int64) (*likes.LikeStatus, error) {
	query := `
		SELECT p.like_count,
		       EXISTS(SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = $2)
		FROM posts p
		WHERE p.id = $1`

	status := &likes.LikeStatus{PostID: postID}
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&status.LikeCount, &status.Liked)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like status: %w", err)
	}

	return status, nil
}
