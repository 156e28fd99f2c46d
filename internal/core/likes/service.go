package likes

import (
	"Bulletin/internal/core/events"
	"Bulletin/internal/core/validation"
	"context"
	"log/slog"
)

type likeService struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewLikeService creates a like service. A nil publisher disables events.
func NewLikeService(repo Repository, publisher events.Publisher, logger *slog.Logger) Service {
	if publisher == nil {
		publisher = events.NopBus{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *likeService) SetLike(ctx context.Context, postID, userID int64, liked bool) (*LikeStatus, error) {
	if err := validation.ID("postId", postID); err != nil {
		return nil, err
	}
	if err := validation.ID("userId", userID); err != nil {
		return nil, err
	}

	status, err := s.repo.SetLike(ctx, postID, userID, liked)
	if err != nil {
		return nil, err
	}

	if status.Changed {
		event := events.Event{
			Type:   events.TypeLikeUpdated,
			PostID: postID,
			Count:  status.LikeCount,
			UserID: userID,
			Liked:  status.Liked,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish like event", "post_id", postID, "error", err)
		}
	}

	return status, nil
}

// GetLikeStatus accepts userID 0 for anonymous readers, who never like anything
func (s *likeService) GetLikeStatus(ctx context.Context, postID, userID int64) (*LikeStatus, error) {
	if err := validation.ID("postId", postID); err != nil {
		return nil, err
	}
	if userID < 0 {
		return nil, validation.New("userId", "must be a positive integer")
	}
	return s.repo.GetStatus(ctx, postID, userID)
}
