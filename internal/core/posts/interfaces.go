package posts

import "context"

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts the post, copying the author's current nickname
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context, limit, offset int) ([]*Post, int64, error)

	// Update applies changes if requesterID is the author and returns the
	// updated post plus the image name it replaced ("" if unchanged).
	Update(ctx context.Context, id, requesterID int64, changes PostChanges) (*Post, string, error)

	// Delete removes the post and its likes and comments if requesterID is
	// the author, returning the image name the post held.
	Delete(ctx context.Context, id, requesterID int64) (string, error)

	IncrementViews(ctx context.Context, id int64) (int64, error)
	GetViews(ctx context.Context, id int64) (int64, error)
}

// Service defines the business logic interface for posts
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)
	ListPosts(ctx context.Context, page, limit int) (*Page, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)
	DeletePost(ctx context.Context, id, requesterID int64) error
	IncrementViews(ctx context.Context, id int64) (int64, error)
	GetViews(ctx context.Context, id int64) (int64, error)
}

// CounterRepository re-derives the denormalized counters from the like and
// comment rows. Used offline to heal drift left by older releases.
type CounterRepository interface {
	Recount(ctx context.Context, postID int64) (*Counters, error)

	// RecountAll corrects every post whose counters disagree with its rows
	// and returns how many were changed.
	RecountAll(ctx context.Context) (int64, error)
}
