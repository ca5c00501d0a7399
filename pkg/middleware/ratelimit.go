package middleware

import (
	"net/http"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"go.uber.org/ratelimit"
)

// RateLimit is a middleware that smooths request throughput to at most rps
// requests per second using Uber's leaky-bucket rate limiter. Excess requests
// are not rejected; they block until the limiter admits them. The limiter is
// the middleware's own internally synchronized state, so a single RateLimit
// instance is safe for concurrent dispatches.
func RateLimit(rps int) pipeline.Middleware {
	return RateLimitWith(ratelimit.New(rps))
}

// RateLimitWith is like RateLimit but accepts a pre-configured limiter,
// allowing several pipelines to share one bucket.
func RateLimitWith(limiter ratelimit.Limiter) pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		limiter.Take()
		return next.Invoke(r)
	})
}
