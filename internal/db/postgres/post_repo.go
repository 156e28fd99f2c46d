package postgres

import (
	"Bulletin/internal/core/posts"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// selectPost reads a post with the author's current nickname, falling back
// to the stored one once the author has withdrawn.
const selectPost = `
	SELECT p.id, p.title, p.content, p.author_id,
	       COALESCE(u.nickname, p.nickname), COALESCE(p.image, ''),
	       p.views, p.like_count, p.comments_count,
	       p.created_at, p.updated_at
	FROM posts p
	LEFT JOIN users u ON u.id = p.author_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post     posts.Post
		authorID sql.NullInt64
	)
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &authorID,
		&post.Nickname, &post.Image,
		&post.Views, &post.LikeCount, &post.CommentsCount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if authorID.Valid {
		post.AuthorID = &authorID.Int64
	}
	return &post, nil
}

// Create inserts a post, copying the nickname from the author row so the
// post keeps a byline after the author withdraws
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	if post.AuthorID == nil {
		return nil, posts.ErrAuthorNotFound
	}

	query := `
		INSERT INTO posts (title, content, author_id, nickname, image)
		SELECT $1, $2, u.id, u.nickname, NULLIF($4, '')
		FROM users u
		WHERE u.id = $3
		RETURNING id, nickname, views, like_count, comments_count, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.Title, post.Content, *post.AuthorID, post.Image).Scan(
		&post.ID, &post.Nickname, &post.Views, &post.LikeCount, &post.CommentsCount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows || isConstraintViolation(err, foreignKeyViolation, "posts_author_id_fkey") {
		return nil, posts.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	return getPost(ctx, r.db, id)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getPost(ctx context.Context, q queryRower, id int64) (*posts.Post, error) {
	post, err := scanPost(q.QueryRowContext(ctx, selectPost+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// List returns one page of posts newest first and the total post count
func (r *postgresPostRepo) List(ctx context.Context, limit, offset int) ([]*posts.Post, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		selectPost+` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, total, nil
}

// lockOwnedPost locks the post row and checks that requesterID wrote it,
// returning the image name currently stored
func lockOwnedPost(ctx context.Context, tx *sql.Tx, id, requesterID int64, lockMode string) (string, error) {
	var (
		authorID sql.NullInt64
		image    string
	)
	err := tx.QueryRowContext(ctx,
		`SELECT author_id, COALESCE(image, '') FROM posts WHERE id = $1 `+lockMode, id,
	).Scan(&authorID, &image)
	if errors.Is(err, sql.ErrNoRows) {
		return "", posts.ErrPostNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to lock post: %w", err)
	}
	if !authorID.Valid || authorID.Int64 != requesterID {
		return "", posts.ErrNotAuthorized
	}
	return image, nil
}

// Update applies the non-nil changes. Counters are never written here.
func (r *postgresPostRepo) Update(ctx context.Context, id, requesterID int64, changes posts.PostChanges) (*posts.Post, string, error) {
	var (
		updated  *posts.Post
		replaced string
	)

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := lockOwnedPost(ctx, tx, id, requesterID, "FOR NO KEY UPDATE")
		if err != nil {
			return err
		}

		sets := []string{"updated_at = NOW()"}
		args := []any{id}
		if changes.Title != nil {
			args = append(args, *changes.Title)
			sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
		}
		if changes.Content != nil {
			args = append(args, *changes.Content)
			sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
		}
		if changes.SetImage {
			args = append(args, changes.Image)
			sets = append(sets, fmt.Sprintf("image = NULLIF($%d, '')", len(args)))
			if current != changes.Image {
				replaced = current
			}
		}

		query := `UPDATE posts SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		updated, err = getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	return updated, replaced, nil
}

// Delete removes the post. Its likes and comments cascade, so the counters
// disappear with the row they describe.
func (r *postgresPostRepo) Delete(ctx context.Context, id, requesterID int64) (string, error) {
	var image string

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		image, err = lockOwnedPost(ctx, tx, id, requesterID, "FOR UPDATE")
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return image, nil
}

func (r *postgresPostRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views`, id,
	).Scan(&views)
	if err == sql.ErrNoRows {
		return 0, posts.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}

func (r *postgresPostRepo) GetViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.db.QueryRowContext(ctx, `SELECT views FROM posts WHERE id = $1`, id).Scan(&views)
	if err == sql.ErrNoRows {
		return 0, posts.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return views, nil
}
