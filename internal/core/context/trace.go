package context

import (
	"context"
)

// TraceContext carries the request correlation IDs the trace
// middleware assigns. The logger attaches them to every line written
// for the request.
type TraceContext struct {
	TraceID   string
	RequestID string
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context, nil when the request
// did not pass through the trace middleware.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}
