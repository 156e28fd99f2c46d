package posts

import (
	"Bulletin/internal/core/images"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Post is a bulletin-board entry with its denormalized counters.
// AuthorID is nil once the author has withdrawn; Nickname keeps the name
// the post was written under.
type Post struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AuthorID      *int64    `json:"author_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Nickname      string    `json:"nickname"`
	Image         string    `json:"image,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	ID            int64     `json:"id"`
	Views         int64     `json:"views"`
	LikeCount     int64     `json:"like_count"`
	CommentsCount int64     `json:"comments_count"`
}

// IsAuthor reports whether userID wrote the post
func (p *Post) IsAuthor(userID int64) bool {
	return p.AuthorID != nil && *p.AuthorID == userID
}

// CreatePostRequest represents input for creating a post
type CreatePostRequest struct {
	Image    *images.Upload `json:"-"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	AuthorID int64          `json:"-"`
}

// UpdatePostRequest is a partial update; nil fields are left unchanged.
// A new Image replaces the old one; RemoveImage clears it.
type UpdatePostRequest struct {
	Title       *string        `json:"title,omitempty"`
	Content     *string        `json:"content,omitempty"`
	Image       *images.Upload `json:"-"`
	ID          int64          `json:"-"`
	RequesterID int64          `json:"-"`
	RemoveImage bool           `json:"remove_image,omitempty"`
}

// Page is one page of the newest-first post listing
type Page struct {
	Posts        []*Post `json:"posts"`
	CurrentPage  int     `json:"current_page"`
	TotalPages   int     `json:"total_pages"`
	TotalPosts   int64   `json:"total_posts"`
	PostsPerPage int     `json:"posts_per_page"`
}

// PostChanges holds the validated columns an update writes.
// Image is only applied when SetImage is true so that clearing can be
// told apart from leaving the column alone.
type PostChanges struct {
	Title    *string
	Content  *string
	Image    string
	SetImage bool
}

// Counters are a post's denormalized like and comment counts
type Counters struct {
	PostID        int64 `json:"post_id"`
	LikeCount     int64 `json:"like_count"`
	CommentsCount int64 `json:"comments_count"`
}
