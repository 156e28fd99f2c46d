package sse

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/events"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultHeartbeat keeps idle connections open through proxies
const DefaultHeartbeat = 25 * time.Second

// StreamHandler relays counter events to the browser as server-sent events
type StreamHandler struct {
	subscriber events.Subscriber
	heartbeat  time.Duration
}

// NewStreamHandler creates a new SSE handler. A non-positive heartbeat uses DefaultHeartbeat.
func NewStreamHandler(subscriber events.Subscriber, heartbeat time.Duration) *StreamHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &StreamHandler{subscriber: subscriber, heartbeat: heartbeat}
}

// HandleStream holds the connection open and writes one SSE frame per event
// GET /api/events
func (h *StreamHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.WriteError(w, http.StatusInternalServerError, "StreamingUnsupported", "Streaming is not supported")
		return
	}

	ctx := r.Context()
	stream, err := h.subscriber.Subscribe(ctx)
	if err != nil {
		slog.Error("failed to subscribe to events", "error", err)
		handlers.WriteError(w, http.StatusServiceUnavailable, "EventsUnavailable", "Event stream unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, ok := <-stream:
			if !ok {
				return
			}
			if err := writeEvent(w, event); err != nil {
				slog.Debug("sse client gone", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
	return err
}
