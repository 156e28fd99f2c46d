// Package comments manages post comments and the comment counter.
package comments

import (
	"Bulletin/internal/core/events"
	"Bulletin/internal/core/validation"
	"context"
	"log/slog"
)

type commentService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewCommentService creates a comment service. A nil publisher disables events.
func NewCommentService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if publisher == nil {
		publisher = events.NopBus{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *commentService) AddComment(ctx context.Context, req CreateCommentRequest) (*AddResult, error) {
	if err := validation.ID("postId", req.PostID); err != nil {
		return nil, err
	}
	if err := validation.ID("authorId", req.AuthorID); err != nil {
		return nil, err
	}
	if err := validation.CommentContent(req.Content); err != nil {
		return nil, err
	}

	comment, count, err := s.repo.Create(ctx, &Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.TypeCommentAdded,
		PostID:    req.PostID,
		Count:     count,
		CommentID: comment.ID,
		UserID:    req.AuthorID,
	})

	return &AddResult{Comment: comment, CommentsCount: count}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id, requesterID int64) (*DeleteResult, error) {
	if err := validation.ID("commentId", id); err != nil {
		return nil, err
	}

	postID, count, err := s.repo.Delete(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.TypeCommentDeleted,
		PostID:    postID,
		Count:     count,
		CommentID: id,
		UserID:    requesterID,
	})

	return &DeleteResult{PostID: postID, CommentsCount: count}, nil
}

func (s *commentService) UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error) {
	if err := validation.ID("commentId", req.ID); err != nil {
		return nil, err
	}
	if err := validation.CommentContent(req.Content); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, req.ID, req.RequesterID, req.Content)
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]*Comment, error) {
	if err := validation.ID("postId", postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish comment event", "type", event.Type, "post_id", event.PostID, "error", err)
	}
}
