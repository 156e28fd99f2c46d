package postgres

import (
	"Bulletin/internal/core/comments"
	"Bulletin/internal/core/posts"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// recountComments re-derives comments_count from the comment rows. The
// caller holds the post lock, so the count sees every committed comment.
const recountComments = `
	UPDATE posts
	SET comments_count = (SELECT COUNT(*) FROM comments WHERE post_id = $1)
	WHERE id = $1
	RETURNING comments_count`

// Create inserts a comment and re-derives the post's comment count
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, int64, error) {
	var count int64

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockUser(ctx, tx, comment.AuthorID); err != nil {
			return err
		}
		if err := lockPost(ctx, tx, comment.PostID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return posts.ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		query := `
			INSERT INTO comments (post_id, author_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Content).
			Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			`SELECT nickname, profile_image FROM users WHERE id = $1`, comment.AuthorID,
		).Scan(&comment.Nickname, &comment.ProfileImage)
		if err != nil {
			return fmt.Errorf("failed to read comment author: %w", err)
		}

		if err := tx.QueryRowContext(ctx, recountComments, comment.PostID).Scan(&count); err != nil {
			return fmt.Errorf("failed to update comment count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return comment, count, nil
}

// Delete removes a comment owned by requesterID and re-derives the count.
// The post row is locked before the comment row, the same order a post
// deletion cascades in, so the two cannot deadlock.
func (r *postgresCommentRepo) Delete(ctx context.Context, id, requesterID int64) (int64, int64, error) {
	var postID, count int64

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT post_id FROM comments WHERE id = $1`, id).Scan(&postID)
		if errors.Is(err, sql.ErrNoRows) {
			return comments.ErrCommentNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to find comment: %w", err)
		}

		if err := lockPost(ctx, tx, postID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Post deleted in the meantime; its comments went with it
				return comments.ErrCommentNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		var authorID int64
		err = tx.QueryRowContext(ctx, `SELECT author_id FROM comments WHERE id = $1 FOR UPDATE`, id).Scan(&authorID)
		if errors.Is(err, sql.ErrNoRows) {
			return comments.ErrCommentNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock comment: %w", err)
		}
		if authorID != requesterID {
			return comments.ErrNotAuthorized
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		if err := tx.QueryRowContext(ctx, recountComments, postID).Scan(&count); err != nil {
			return fmt.Errorf("failed to update comment count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return postID, count, nil
}

// Update edits the content of a comment owned by requesterID. The ownership
// check is part of the UPDATE so a concurrent delete cannot slip between.
func (r *postgresCommentRepo) Update(ctx context.Context, id, requesterID int64, content string) (*comments.Comment, error) {
	query := `
		WITH updated AS (
			UPDATE comments
			SET content = $3, updated_at = NOW()
			WHERE id = $1 AND author_id = $2
			RETURNING id, post_id, author_id, content, created_at, updated_at
		)
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, c.updated_at,
		       u.nickname, u.profile_image
		FROM updated c
		JOIN users u ON u.id = c.author_id`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id, requesterID, content).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
		&comment.Nickname, &comment.ProfileImage,
	)
	if err == nil {
		return &comment, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check comment existence: %w", err)
	}
	if !exists {
		return nil, comments.ErrCommentNotFound
	}
	return nil, comments.ErrNotAuthorized
}

// ListByPost returns a post's comments oldest first with author details
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at, c.updated_at,
		       u.nickname, u.profile_image
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*comments.Comment{}
	for rows.Next() {
		var comment comments.Comment
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt,
			&comment.Nickname, &comment.ProfileImage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	if len(result) == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check post existence: %w", err)
		}
		if !exists {
			return nil, posts.ErrPostNotFound
		}
	}

	return result, nil
}
