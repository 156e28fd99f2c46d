// Package events carries counter changes to connected browsers.
// Publication is best-effort: the database is the source of truth and a
// lost event only delays a client until its next fetch.
package events

import (
	"context"
	"time"
)

// Event types double as pub/sub channel names and SSE event names
const (
	TypeLikeUpdated    = "like-updated"
	TypeCommentAdded   = "comment-added"
	TypeCommentDeleted = "comment-deleted"
)

// Types lists every channel a subscriber listens on
var Types = []string{TypeLikeUpdated, TypeCommentAdded, TypeCommentDeleted}

// Event is a committed counter change on a post.
// Count is the authoritative like_count for like-updated and the
// comments_count for comment events.
type Event struct {
	At        time.Time `json:"at"`
	Type      string    `json:"type"`
	PostID    int64     `json:"post_id"`
	Count     int64     `json:"count"`
	CommentID int64     `json:"comment_id,omitempty"`
	UserID    int64     `json:"user_id,omitempty"`
	Liked     bool      `json:"liked,omitempty"`
}

// Publisher sends events to subscribers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber streams events until ctx is cancelled.
// The returned channel is closed when the subscription ends.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// Bus is a Publisher that can also be subscribed to
type Bus interface {
	Publisher
	Subscriber
}

// NopBus drops every event. Used when Redis is not configured.
type NopBus struct{}

func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe returns a channel that never delivers and closes with ctx
func (NopBus) Subscribe(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
