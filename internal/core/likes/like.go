// Package likes toggles a user's like on a post and reports the
// authoritative like count.
package likes

// LikeStatus is the post's like count and whether the requester likes it.
// Changed is set when the call actually inserted or removed a like row.
type LikeStatus struct {
	PostID    int64 `json:"post_id"`
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"is_liked"`
	Changed   bool  `json:"-"`
}

// SetLikeRequest is the body of a like toggle
type SetLikeRequest struct {
	Liked *bool `json:"is_liked"`
}
