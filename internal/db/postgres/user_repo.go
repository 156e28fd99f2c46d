package postgres

import (
	"Bulletin/internal/core/users"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

const selectUser = `
	SELECT id, email, password_hash, nickname, profile_image, created_at, updated_at
	FROM users`

func scanUser(row rowScanner) (*users.User, error) {
	var user users.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Nickname,
		&user.ProfileImage, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// mapUniqueViolation turns a unique constraint failure into the matching domain error
func mapUniqueViolation(err error) error {
	switch {
	case isConstraintViolation(err, uniqueViolation, "unique_user_email"):
		return users.ErrEmailTaken
	case isConstraintViolation(err, uniqueViolation, "unique_user_nickname"):
		return users.ErrNicknameTaken
	}
	return nil
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (email, password_hash, nickname, profile_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.Nickname, user.ProfileImage).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepo) UpdateNickname(ctx context.Context, id int64, nickname string) (*users.User, error) {
	query := `
		UPDATE users SET nickname = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, password_hash, nickname, profile_image, created_at, updated_at`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, nickname))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("failed to update nickname: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

// UpdateProfileImage swaps the stored image name and returns the old one
func (r *postgresUserRepo) UpdateProfileImage(ctx context.Context, id int64, image string) (string, error) {
	query := `
		UPDATE users u SET profile_image = $2, updated_at = NOW()
		FROM (SELECT id, profile_image FROM users WHERE id = $1 FOR UPDATE) old
		WHERE u.id = old.id
		RETURNING old.profile_image`

	var previous string
	err := r.db.QueryRowContext(ctx, query, id, image).Scan(&previous)
	if err == sql.ErrNoRows {
		return "", users.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to update profile image: %w", err)
	}
	return previous, nil
}

// Delete removes the account. Its likes and comments cascade, which would
// leave the counters of their posts too high, so the affected posts are
// recounted inside the same transaction. The user row is locked first: new
// likes and comments by this user wait on it, so the affected set cannot
// grow before the cascade runs.
func (r *postgresUserRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var userID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			return users.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock user: %w", err)
		}

		// Authored posts are included because detaching the author writes to them
		lockQuery := `
			SELECT id FROM posts
			WHERE id IN (
				SELECT post_id FROM likes WHERE user_id = $1
				UNION
				SELECT post_id FROM comments WHERE author_id = $1
				UNION
				SELECT id FROM posts WHERE author_id = $1
			)
			ORDER BY id
			FOR NO KEY UPDATE`

		rows, err := tx.QueryContext(ctx, lockQuery, id)
		if err != nil {
			return fmt.Errorf("failed to lock affected posts: %w", err)
		}
		var affected []int64
		for rows.Next() {
			var postID int64
			if err := rows.Scan(&postID); err != nil {
				_ = rows.Close()
				return fmt.Errorf("failed to scan post id: %w", err)
			}
			affected = append(affected, postID)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return fmt.Errorf("error iterating affected posts: %w", err)
		}
		_ = rows.Close()

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		if len(affected) == 0 {
			return nil
		}

		recount := `
			UPDATE posts p
			SET like_count = (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
			    comments_count = (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
			WHERE p.id = ANY($1)`
		if _, err := tx.ExecContext(ctx, recount, pq.Array(affected)); err != nil {
			return fmt.Errorf("failed to recount posts after user deletion: %w", err)
		}
		return nil
	})
}
