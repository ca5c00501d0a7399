package middleware

import (
	"context"
	"net/http"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"github.com/google/uuid"
)

// traceIDKey is the key used to store the trace ID in the request context
type traceIDKey struct{}

// Trace creates a middleware that generates a unique trace ID for each
// request, adds it to the request context, and echoes it in the X-Trace-ID
// response header. This allows for request tracing across logs.
func Trace() pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		// Generate a unique trace ID and add it to the request context
		traceID := uuid.New().String()
		ctx := context.WithValue(r.Context(), traceIDKey{}, traceID)

		resp, err := next.Invoke(r.WithContext(ctx))
		if err != nil {
			return nil, err
		}

		resp.Header.Set("X-Trace-ID", traceID)
		return resp, nil
	})
}

// GetTraceID extracts the trace ID from the request context.
// Returns an empty string if no trace ID is found.
func GetTraceID(r *http.Request) string {
	return GetTraceIDFromContext(r.Context())
}

// GetTraceIDFromContext extracts the trace ID from a context.
// Returns an empty string if no trace ID is found.
func GetTraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
