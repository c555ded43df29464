// Package trace - trace propagation across the capture server's HTTP
// and WebSocket surfaces.
package trace

import (
	"context"
	"net/http"
)

// Middleware derives a trace context for every HTTP request, continuing
// a caller-supplied trace when the request headers carry one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc := fromHeaders(r)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), tc)))
	})
}

// fromHeaders continues the caller's trace from the request headers,
// creating a fresh one when none is carried. The caller's span becomes
// the parent.
func fromHeaders(r *http.Request) Context {
	tc := Context{
		TraceID:      r.Header.Get(TraceIDKey),
		ParentSpanID: r.Header.Get(SpanIDKey),
		SpanID:       generateSpanID(),
	}
	if tc.TraceID == "" {
		tc.TraceID = generateTraceID()
	}
	return tc
}

// MessageContext derives the context for one WebSocket message. A
// trace_id carried in the message becomes the parent of a fresh child
// span; without one the connection's own trace is reused, created if
// absent.
func MessageContext(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		ctx, _ = EnsureContext(ctx)
		return ctx
	}
	return WithContext(ctx, NewChild(Context{TraceID: traceID}))
}
