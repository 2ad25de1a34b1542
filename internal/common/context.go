package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyEventID contextKey = "event_id"
)

// WithEventID adds a per-event correlation ID to the context.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, ContextKeyEventID, eventID)
}

// EventIDFromContext extracts the correlation ID from context.
func EventIDFromContext(ctx context.Context) string {
	if eventID, ok := ctx.Value(ContextKeyEventID).(string); ok {
		return eventID
	}
	return ""
}
