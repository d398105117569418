package context

import (
	"context"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type contextKey string

const (
	TRACE_KEY contextKey = "traceID"
)

// WithTrace starts a new operation: it generates a trace id and stores it
// both for outgoing request headers and for the logger.
func WithTrace(ctx context.Context) context.Context {
	if _, ok := GetTraceID(ctx); ok {
		return ctx
	}
	traceID := uuid.New().String()
	ctx = context.WithValue(ctx, TRACE_KEY, traceID)
	return logger.ContextWithTraceID(ctx, traceID)
}

// GetTraceID retrieves the operation trace id from the context
func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TRACE_KEY).(string)
	return traceID, ok && traceID != ""
}
