package users

import (
	"Bulletin/internal/core/images"
	"context"
)

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) (*User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error

	// UpdateProfileImage stores the new image name and returns the previous one
	// so the caller can remove the old file once the row is committed.
	UpdateProfileImage(ctx context.Context, id int64, image string) (previous string, err error)

	// Delete removes the account. Likes and comments cascade; posts keep
	// their content with the author detached.
	Delete(ctx context.Context, id int64) error
}

// UserService defines the interface for user business logic
type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Withdraw(ctx context.Context, userID int64) error
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateNickname(ctx context.Context, userID int64, nickname string) (*Profile, error)
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
	UpdateProfileImage(ctx context.Context, userID int64, upload *images.Upload) (*Profile, error)
}
