package comments

import "errors"

var (
	// ErrCommentNotFound is returned when a comment id does not exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotAuthorized is returned when someone other than the author edits or deletes a comment
	ErrNotAuthorized = errors.New("not authorized to modify this comment")
)

// IsNotFound checks if an error is a comment not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound)
}
