package likes

import "context"

// Repository performs like mutations and counter maintenance in one transaction.
// Both methods return posts.ErrPostNotFound for a missing post.
type Repository interface {
	// SetLike moves the (post, user) pair to the requested state. Repeating
	// the current state changes nothing.
	SetLike(ctx context.Context, postID, userID int64, liked bool) (*LikeStatus, error)

	// GetStatus reads the count and, for userID > 0, whether the user likes the post
	GetStatus(ctx context.Context, postID, userID int64) (*LikeStatus, error)
}

// Service defines the business logic interface for likes
type Service interface {
	SetLike(ctx context.Context, postID, userID int64, liked bool) (*LikeStatus, error)
	GetLikeStatus(ctx context.Context, postID, userID int64) (*LikeStatus, error)
}
