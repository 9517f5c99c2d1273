package iphauthz

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Diagnostic event types emitted by the Engine.
const (
	// EventRolesRefreshed fires on every cache miss that re-reads the
	// identity store, including malformed payloads that resolved to the
	// empty set.
	EventRolesRefreshed = "roles_refreshed"
	// EventSourcePurged fires when a top-level validation failure
	// triggered the self-healing purge of the roles record.
	EventSourcePurged = "source_purged"
	// EventCacheInvalidated fires on explicit invalidation.
	EventCacheInvalidated = "cache_invalidated"
	// EventSessionCleared fires when both identity records are cleared.
	EventSessionCleared = "session_cleared"
)

// AuditEvent is one diagnostic record. Metadata carries counts and flags
// only — never raw identity payloads, so events are safe to ship to
// logs.
type AuditEvent struct {
	EventID   string            `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	EventType string            `json:"event_type"`
	SessionID string            `json:"session_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// AuditSink receives diagnostic events from the Engine's dispatcher.
// Emit must not block indefinitely; honor ctx cancellation.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink discards every event.
type NoOpSink struct{}

// Emit implements [AuditSink].
func (NoOpSink) Emit(context.Context, AuditEvent) {}

// ChannelSink forwards events to a buffered channel, for tests and
// in-process consumers.
type ChannelSink struct {
	events chan AuditEvent
}

// NewChannelSink creates a [ChannelSink] with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{events: make(chan AuditEvent, buffer)}
}

// Emit implements [AuditSink].
func (s *ChannelSink) Emit(ctx context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events exposes the receiving side of the sink.
func (s *ChannelSink) Events() <-chan AuditEvent {
	return s.events
}

// JSONWriterSink writes one JSON line per event to an io.Writer.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink creates a [JSONWriterSink] over w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{writer: w}
}

// Emit implements [AuditSink]. Marshal failures are dropped silently;
// diagnostics must never take the caller down.
func (s *JSONWriterSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
