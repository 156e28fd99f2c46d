package postgres

import (
	"Bulletin/internal/core/posts"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresCounterRepo struct {
	db *sql.DB
}

// NewCounterRepository creates a repository that re-derives post counters
func NewCounterRepository(db *sql.DB) posts.CounterRepository {
	return &postgresCounterRepo{db: db}
}

// Recount locks the post and rewrites both counters from the child rows
func (r *postgresCounterRepo) Recount(ctx context.Context, postID int64) (*posts.Counters, error) {
	counters := &posts.Counters{PostID: postID}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockPost(ctx, tx, postID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return posts.ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `SELECT recount_post_counters($1)`, postID); err != nil {
			return fmt.Errorf("failed to recount post: %w", err)
		}

		err := tx.QueryRowContext(ctx,
			`SELECT like_count, comments_count FROM posts WHERE id = $1`, postID,
		).Scan(&counters.LikeCount, &counters.CommentsCount)
		if err != nil {
			return fmt.Errorf("failed to read counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return counters, nil
}

// RecountAll finds posts whose counters disagree with their rows and fixes
// each one under its post lock. The drift scan itself takes no locks, so a
// post that changes between scan and fix is still recounted exactly.
func (r *postgresCounterRepo) RecountAll(ctx context.Context) (int64, error) {
	query := `
		SELECT p.id
		FROM posts p
		WHERE p.like_count <> (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		   OR p.comments_count <> (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to scan for drifted posts: %w", err)
	}

	var drifted []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("failed to scan post id: %w", err)
		}
		drifted = append(drifted, id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("error iterating drifted posts: %w", err)
	}
	_ = rows.Close()

	var fixed int64
	for _, id := range drifted {
		if _, err := r.Recount(ctx, id); err != nil {
			if errors.Is(err, posts.ErrPostNotFound) {
				continue
			}
			return fixed, err
		}
		fixed++
	}
	return fixed, nil
}
