package comments

import "time"

// Comment is a reply on a post. Nickname and ProfileImage are the author's
// current values, filled on reads.
type Comment struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Content      string    `json:"content"`
	Nickname     string    `json:"nickname,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	ID           int64     `json:"id"`
	PostID       int64     `json:"post_id"`
	AuthorID     int64     `json:"author_id"`
}

// CreateCommentRequest represents input for adding a comment
type CreateCommentRequest struct {
	Content  string `json:"content"`
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"-"`
}

// UpdateCommentRequest represents an edit of an existing comment
type UpdateCommentRequest struct {
	Content     string `json:"content"`
	ID          int64  `json:"-"`
	RequesterID int64  `json:"-"`
}

// AddResult is a new comment and the post's comment count after it
type AddResult struct {
	Comment       *Comment `json:"comment"`
	CommentsCount int64    `json:"comments_count"`
}

// DeleteResult is the post's comment count after a deletion
type DeleteResult struct {
	PostID        int64 `json:"post_id"`
	CommentsCount int64 `json:"comments_count"`
}
