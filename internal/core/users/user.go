package users

import (
	"time"
)

// DefaultProfileImage is assigned to accounts that never uploaded a picture
const DefaultProfileImage = "default.webp"

// User is a bulletin-board account
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	ProfileImage string    `json:"profile_image"`
	PasswordHash string    `json:"-"`
	ID           int64     `json:"id"`
}

// SignupRequest represents the input for creating a new account
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// ChangePasswordRequest represents a password change for a signed-in user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Profile is the public view of an account
type Profile struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	ProfileImage    string `json:"profile_image"`
	ProfileImageURL string `json:"profile_image_url"`
	ID              int64  `json:"id"`
}
