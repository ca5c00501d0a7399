package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"github.com/patrickmn/go-cache"
)

// Cache is a middleware that caches successful GET responses for the given
// TTL, keyed by the request URL. Non-GET requests and failed dispatches are
// never cached. The cache store is internally synchronized and may be shared
// across pipelines.
func Cache(store *cache.Cache, ttl time.Duration) pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		if r.Method != http.MethodGet {
			return next.Invoke(r)
		}

		key := strings.ToLower(r.URL.String())
		if cached, ok := store.Get(key); ok {
			// Hand back a copy so wrapping middleware may mutate it
			return cached.(*common.Response).Clone(), nil
		}

		resp, err := next.Invoke(r)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < http.StatusBadRequest {
			store.Set(key, resp.Clone(), ttl)
		}
		return resp, nil
	})
}
