package comments

import "context"

// Repository stores comments and keeps posts.comments_count equal to the
// number of comment rows. Mutations on a missing post return
// posts.ErrPostNotFound.
type Repository interface {
	// Create inserts the comment and returns the re-derived count
	Create(ctx context.Context, comment *Comment) (*Comment, int64, error)

	// Delete removes the comment if requesterID wrote it and returns its post
	// id with the re-derived count
	Delete(ctx context.Context, id, requesterID int64) (int64, int64, error)

	Update(ctx context.Context, id, requesterID int64, content string) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// Service defines the business logic interface for comments
type Service interface {
	AddComment(ctx context.Context, req CreateCommentRequest) (*AddResult, error)
	DeleteComment(ctx context.Context, id, requesterID int64) (*DeleteResult, error)
	UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*Comment, error)
}
