package sse

import (
	"Bulletin/internal/core/events"
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSubscriber struct {
	ch  chan events.Event
	err error
}

func (s *chanSubscriber) Subscribe(ctx context.Context) (<-chan events.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(chan events.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case e := <-s.ch:
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func TestStreamHandler_WritesFrames(t *testing.T) {
	sub := &chanSubscriber{ch: make(chan events.Event, 1)}
	server := httptest.NewServer(http.HandlerFunc(NewStreamHandler(sub, time.Hour).HandleStream))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	sub.ch <- events.Event{Type: events.TypeLikeUpdated, PostID: 4, Count: 2, Liked: true}

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: like-updated\n", line)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "data: {"))
	assert.Contains(t, line, `"post_id":4`)
	assert.Contains(t, line, `"count":2`)
}

func TestStreamHandler_Heartbeat(t *testing.T) {
	sub := &chanSubscriber{ch: make(chan events.Event)}
	server := httptest.NewServer(http.HandlerFunc(NewStreamHandler(sub, 20*time.Millisecond).HandleStream))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": ping\n", line)
}

func TestStreamHandler_SubscribeFailure(t *testing.T) {
	sub := &chanSubscriber{err: errors.New("redis down")}

	rec := httptest.NewRecorder()
	NewStreamHandler(sub, 0).HandleStream(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
