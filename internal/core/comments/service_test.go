package comments

import (
	"Bulletin/internal/core/events"
	"Bulletin/internal/core/posts"
	"Bulletin/internal/core/validation"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *Comment) (*Comment, int64, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*Comment), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id, requesterID int64) (int64, int64, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepository) Update(ctx context.Context, id, requesterID int64, content string) (*Comment, error) {
	args := m.Called(ctx, id, requesterID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return nil
}

func TestCommentService_AddComment(t *testing.T) {
	repo := new(mockCommentRepository)
	pub := &recordingPublisher{}
	service := NewCommentService(repo, pub, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 1 && c.AuthorID == 9 && c.Content == "hi"
	})).Return(&Comment{ID: 11, PostID: 1, AuthorID: 9, Content: "hi"}, int64(1), nil)

	result, err := service.AddComment(ctx, CreateCommentRequest{PostID: 1, AuthorID: 9, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.Comment.ID)
	assert.Equal(t, int64(1), result.CommentsCount)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeCommentAdded, pub.events[0].Type)
	assert.Equal(t, int64(1), pub.events[0].Count)
	assert.Equal(t, int64(11), pub.events[0].CommentID)
}

func TestCommentService_AddComment_ContentRules(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"blank", "   \n\t", true},
		{"single char", "a", false},
		{"exactly 500", strings.Repeat("가", 500), false},
		{"501 chars", strings.Repeat("a", 501), true},
		{"500 emoji count as 500", strings.Repeat("👍", 500), false},
	}

	repo.On("Create", ctx, mock.Anything).Return(&Comment{ID: 1}, int64(1), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.AddComment(ctx, CreateCommentRequest{PostID: 1, AuthorID: 1, Content: tt.content})
			if tt.wantErr {
				assert.True(t, validation.IsValidationError(err), "expected validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentService_AddComment_PostNotFound(t *testing.T) {
	repo := new(mockCommentRepository)
	pub := &recordingPublisher{}
	service := NewCommentService(repo, pub, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil, int64(0), posts.ErrPostNotFound)

	_, err := service.AddComment(ctx, CreateCommentRequest{PostID: 99999, AuthorID: 1, Content: "hello"})
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	assert.Empty(t, pub.events)
}

func TestCommentService_DeleteComment(t *testing.T) {
	repo := new(mockCommentRepository)
	pub := &recordingPublisher{}
	service := NewCommentService(repo, pub, nil)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(7), int64(3)).Return(int64(1), int64(0), nil)

	result, err := service.DeleteComment(ctx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.PostID)
	assert.Equal(t, int64(0), result.CommentsCount)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeCommentDeleted, pub.events[0].Type)
}

func TestCommentService_DeleteComment_Errors(t *testing.T) {
	repo := new(mockCommentRepository)
	pub := &recordingPublisher{}
	service := NewCommentService(repo, pub, nil)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(7), int64(4)).Return(int64(0), int64(0), ErrNotAuthorized)
	repo.On("Delete", ctx, int64(8), int64(4)).Return(int64(0), int64(0), ErrCommentNotFound)

	_, err := service.DeleteComment(ctx, 7, 4)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = service.DeleteComment(ctx, 8, 4)
	assert.True(t, IsNotFound(err))

	assert.Empty(t, pub.events)
}

func TestCommentService_UpdateComment(t *testing.T) {
	repo := new(mockCommentRepository)
	service := NewCommentService(repo, nil, nil)
	ctx := context.Background()

	repo.On("Update", ctx, int64(5), int64(2), "edited").
		Return(&Comment{ID: 5, AuthorID: 2, Content: "edited"}, nil)

	comment, err := service.UpdateComment(ctx, UpdateCommentRequest{ID: 5, RequesterID: 2, Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)

	_, err = service.UpdateComment(ctx, UpdateCommentRequest{ID: 5, RequesterID: 2, Content: ""})
	assert.True(t, validation.IsValidationError(err))
}
