// Package validation holds the field rules shared by every service.
// Lengths are counted in grapheme clusters so that Hangul and emoji count
// the way users see them.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	MaxEmailLength = 50

	MinPasswordLength = 8
	MaxPasswordLength = 20

	MinNicknameLength = 2
	MaxNicknameLength = 20

	MinTitleLength = 2
	MaxTitleLength = 100

	MinPostContentLength = 10
	MaxPostContentLength = 2000

	MinCommentLength = 1
	MaxCommentLength = 500

	MaxImageBytes = 5 * 1024 * 1024
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nicknameRegex = regexp.MustCompile(`^[a-zA-Z0-9가-힣ㄱ-ㅎㅏ-ㅣ_-]+$`)

	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
)

// Error is an InvalidInput failure tied to a single request field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// New creates a validation error for field.
func New(field, message string) error {
	return &Error{Field: field, Message: message}
}

// IsValidationError reports whether err wraps a *Error.
func IsValidationError(err error) bool {
	var valErr *Error
	return errors.As(err, &valErr)
}

// ID checks that id is a positive identifier.
func ID(field string, id int64) error {
	if id <= 0 {
		return New(field, "must be a positive integer")
	}
	return nil
}

func Email(email string) error {
	if email == "" {
		return New("email", "required")
	}
	if !emailRegex.MatchString(email) {
		return New("email", "invalid email format")
	}
	if len(email) > MaxEmailLength {
		return New("email", fmt.Sprintf("must be at most %d characters", MaxEmailLength))
	}
	return nil
}

// Password requires 8-20 characters with at least one upper-case letter,
// one digit and one of !@#$%^&*.
func Password(password string) error {
	if password == "" {
		return New("password", "required")
	}
	n := uniseg.GraphemeClusterCount(password)
	if n < MinPasswordLength || n > MaxPasswordLength {
		return New("password", fmt.Sprintf("must be between %d and %d characters", MinPasswordLength, MaxPasswordLength))
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") ||
		!strings.ContainsAny(password, "0123456789") ||
		!strings.ContainsAny(password, "!@#$%^&*") {
		return New("password", "must contain an upper-case letter, a digit and a special character (!@#$%^&*)")
	}
	return nil
}

func Nickname(nickname string) error {
	if nickname == "" {
		return New("nickname", "required")
	}
	n := uniseg.GraphemeClusterCount(nickname)
	if n < MinNicknameLength || n > MaxNicknameLength {
		return New("nickname", fmt.Sprintf("must be between %d and %d characters", MinNicknameLength, MaxNicknameLength))
	}
	if !nicknameRegex.MatchString(nickname) {
		return New("nickname", "may only contain letters, digits, '_' and '-'")
	}
	return nil
}

func Title(title string) error {
	return textLength("title", title, MinTitleLength, MaxTitleLength)
}

func PostContent(content string) error {
	return textLength("content", content, MinPostContentLength, MaxPostContentLength)
}

func CommentContent(content string) error {
	return textLength("content", content, MinCommentLength, MaxCommentLength)
}

// Image checks an upload's declared content type and size. A zero size
// means no image was attached, which is always valid.
func Image(contentType string, size int64) error {
	if size == 0 {
		return nil
	}
	if !allowedImageTypes[contentType] {
		return New("image", "unsupported file type (jpg, png, gif, webp only)")
	}
	if size > MaxImageBytes {
		return New("image", "file must be 5MB or smaller")
	}
	return nil
}

func textLength(field, value string, min, max int) error {
	if strings.TrimSpace(value) == "" {
		return New(field, "required")
	}
	n := uniseg.GraphemeClusterCount(value)
	if n < min || n > max {
		return New(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
	return nil
}
