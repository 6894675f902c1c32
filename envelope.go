package beacon

import (
	"context"
	"time"
)

// Envelope is one telemetry item. The tracker stamps SessionID and
// SessionStart before delivery so downstream consumers can correlate items
// into bounded periods of activity.
type Envelope struct {
	// Name identifies the event kind, dotted-lowercase ("http.request").
	Name string `json:"name"`

	// Time is when the event happened. Zero means "now" at Track time.
	Time time.Time `json:"time"`

	// Service is the emitting application, from the tracker config.
	Service string `json:"service,omitempty"`

	// SessionID correlates this item with others from the same session.
	SessionID string `json:"session_id"`

	// SessionStart is when the stamped session was acquired.
	SessionStart time.Time `json:"session_start"`

	// Attrs carries event-specific payload.
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Sender delivers stamped envelope batches downstream. Implementations
// should be safe to call from the tracker's single worker goroutine and may
// block; slow senders delay flushes, never Track.
type Sender interface {
	Send(ctx context.Context, batch []Envelope) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, batch []Envelope) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, batch []Envelope) error {
	return f(ctx, batch)
}
