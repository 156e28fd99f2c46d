package posts

import "errors"

var (
	// ErrPostNotFound is returned when a post id does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when someone other than the author edits or deletes a post
	ErrNotAuthorized = errors.New("not authorized to modify this post")

	// ErrAuthorNotFound is returned when creating a post for an account that no longer exists
	ErrAuthorNotFound = errors.New("author not found")
)

// IsNotFound checks if an error is a post not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}
