package posts

import (
	"Bulletin/internal/core/images"
	"Bulletin/internal/core/validation"
	"context"
	"log/slog"
	"math"
	"strings"
)

type postService struct {
	repo       Repository
	imageStore images.Store
	logger     *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(repo Repository, imageStore images.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:       repo,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := validation.ID("authorId", req.AuthorID); err != nil {
		return nil, err
	}
	if err := validation.Title(req.Title); err != nil {
		return nil, err
	}
	if err := validation.PostContent(req.Content); err != nil {
		return nil, err
	}
	if err := validation.Image(req.Image.ContentTypeOrEmpty(), req.Image.Size()); err != nil {
		return nil, err
	}

	var imageName string
	if req.Image.Size() > 0 {
		name, err := s.imageStore.Save(ctx, images.KindPost, req.Image)
		if err != nil {
			return nil, err
		}
		imageName = name
	}

	authorID := req.AuthorID
	post, err := s.repo.Create(ctx, &Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: &authorID,
		Image:    imageName,
	})
	if err != nil {
		s.removeImage(ctx, imageName)
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID, "author_id", req.AuthorID)
	return s.withURL(post), nil
}

func (s *postService) ListPosts(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	// Keeps the offset within int32 so it can never wrap negative
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}

	list, total, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		s.withURL(p)
	}

	return &Page{
		Posts:        list,
		CurrentPage:  page,
		TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
		TotalPosts:   total,
		PostsPerPage: limit,
	}, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	if err := validation.ID("postId", id); err != nil {
		return nil, err
	}
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withURL(post), nil
}

// UpdatePost applies a partial update. A replacement image is stored before
// the row changes; whichever file the row no longer references afterwards
// is removed.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	if err := validation.ID("postId", req.ID); err != nil {
		return nil, err
	}

	var changes PostChanges
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validation.Title(title); err != nil {
			return nil, err
		}
		changes.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if err := validation.PostContent(content); err != nil {
			return nil, err
		}
		changes.Content = &content
	}
	if err := validation.Image(req.Image.ContentTypeOrEmpty(), req.Image.Size()); err != nil {
		return nil, err
	}

	switch {
	case req.Image.Size() > 0:
		name, err := s.imageStore.Save(ctx, images.KindPost, req.Image)
		if err != nil {
			return nil, err
		}
		changes.Image = name
		changes.SetImage = true
	case req.RemoveImage:
		changes.SetImage = true
	}

	post, replaced, err := s.repo.Update(ctx, req.ID, req.RequesterID, changes)
	if err != nil {
		s.removeImage(ctx, changes.Image)
		return nil, err
	}
	s.removeImage(ctx, replaced)

	return s.withURL(post), nil
}

func (s *postService) DeletePost(ctx context.Context, id, requesterID int64) error {
	if err := validation.ID("postId", id); err != nil {
		return err
	}

	image, err := s.repo.Delete(ctx, id, requesterID)
	if err != nil {
		return err
	}
	s.removeImage(ctx, image)

	s.logger.Info("post deleted", "post_id", id, "requester_id", requesterID)
	return nil
}

func (s *postService) IncrementViews(ctx context.Context, id int64) (int64, error) {
	if err := validation.ID("postId", id); err != nil {
		return 0, err
	}
	return s.repo.IncrementViews(ctx, id)
}

func (s *postService) GetViews(ctx context.Context, id int64) (int64, error) {
	if err := validation.ID("postId", id); err != nil {
		return 0, err
	}
	return s.repo.GetViews(ctx, id)
}

func (s *postService) withURL(post *Post) *Post {
	post.ImageURL = s.imageStore.URL(post.Image)
	return post
}

func (s *postService) removeImage(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.imageStore.Delete(ctx, name); err != nil {
		s.logger.Warn("failed to delete post image", "image", name, "error", err)
	}
}
