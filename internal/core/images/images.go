// Package images stores uploaded post and profile pictures.
package images

import (
	"context"
	"errors"
)

// Kind selects the sub-directory and size limit for an upload
type Kind string

const (
	KindPost    Kind = "posts"
	KindProfile Kind = "profiles"
)

var (
	// ErrUnsupportedFormat is returned when upload bytes are not a decodable jpeg, png, gif or webp image
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrProcessingFailed is returned when an image decodes but cannot be resized or encoded
	ErrProcessingFailed = errors.New("image processing failed")

	// ErrInvalidName is returned for stored names that would escape the upload directory
	ErrInvalidName = errors.New("invalid image name")
)

// Upload is an image received from a client
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the upload length in bytes
func (u *Upload) Size() int64 {
	if u == nil {
		return 0
	}
	return int64(len(u.Data))
}

// Store persists images and resolves their public URLs.
// Names returned by Save are relative to the store and safe to keep in the database.
type Store interface {
	Save(ctx context.Context, kind Kind, upload *Upload) (string, error)
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// ContentTypeOrEmpty returns the declared content type, or "" for a nil upload
func (u *Upload) ContentTypeOrEmpty() string {
	if u == nil {
		return ""
	}
	return u.ContentType
}
