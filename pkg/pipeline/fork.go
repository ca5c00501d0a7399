package pipeline

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Suhaibinator/SPipeline/pkg/common"
)

// Predicate decides whether a request should branch to a fork's sub-pipeline.
type Predicate interface {
	// Matches reports whether the request should take the fork. It sees the
	// request in its current state, including any path rewriting applied by
	// an enclosing fork.
	Matches(r *http.Request) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(r *http.Request) bool

// Matches calls f(r).
func (f PredicateFunc) Matches(r *http.Request) bool {
	return f(r)
}

// fork is a middleware that optionally delegates to a sub-pipeline based on a
// predicate applied to each request.
type fork struct {
	sub       *Pipeline
	predicate Predicate
}

// When constructs a fork middleware. The predicate is evaluated on every
// request and determines whether to delegate to the sub-pipeline; on a
// non-match the outer continuation is invoked instead. The builder receives a
// fresh empty pipeline and runs exactly once, synchronously, at construction
// time.
//
// For example, a sub-pipeline which handles all POST requests:
//
//	p.Add(pipeline.When(func(r *http.Request) bool { return r.Method == http.MethodPost }, func(sub *pipeline.Pipeline) {
//		sub.Add(pipeline.HandleFunc(createHandler))
//	}))
func When(predicate PredicateFunc, build func(sub *Pipeline)) Middleware {
	return WhenMatches(predicate, build)
}

// WhenMatches is like When but accepts any Predicate implementation.
func WhenMatches(predicate Predicate, build func(sub *Pipeline)) Middleware {
	sub := New()
	build(sub)
	return &fork{sub: sub, predicate: predicate}
}

// Process delegates to the sub-pipeline when the predicate matches the
// request, and to the outer continuation otherwise. The outer continuation is
// never invoked on the matching branch.
func (f *fork) Process(r *http.Request, next Next) (*common.Response, error) {
	if f.predicate.Matches(r) {
		return f.sub.Dispatch(r)
	}
	return next.Invoke(r)
}

// originalPathKey is the reserved request-context key under which the first
// matching path fork stashes the pre-rewrite request path.
type originalPathKey struct{}

// OriginalPath returns the request path as it was before the first matching
// path fork stripped its prefix, along with whether any fork has stashed one.
// Nested forks never overwrite the stash, so the returned path is the full
// inbound path regardless of how many prefix layers were stripped.
func OriginalPath(r *http.Request) (string, bool) {
	path, ok := r.Context().Value(originalPathKey{}).(string)
	return path, ok
}

// pathFork is a fork whose predicate is a path-segment prefix match and which
// rewrites the request path before delegating.
type pathFork struct {
	sub    *Pipeline
	prefix []string
}

// WhenPath constructs a path fork middleware. The path specification is
// parsed into segments at construction time (see ParsePath); a malformed
// specification fails here, never at request time. On dispatch the fork
// matches when the request's path segments start with the parsed segments,
// compared position by position and case-sensitively. On a match the fork
// stashes the pre-rewrite path (retrievable via OriginalPath), strips the
// matched prefix from the live path, and delegates to the sub-pipeline built
// by build; on a non-match it invokes the outer continuation with the request
// unmodified.
//
// For example, a sub-pipeline which handles all requests under "/api/v2":
//
//	fork, err := pipeline.WhenPath("/api/v2", func(v2 *pipeline.Pipeline) {
//		v2.Add(pipeline.HandleFunc(apiV2Handler))
//	})
func WhenPath(path string, build func(sub *Pipeline)) (Middleware, error) {
	prefix, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	sub := New()
	build(sub)
	return &pathFork{sub: sub, prefix: prefix}, nil
}

// MustWhenPath is like WhenPath but panics on a malformed path
// specification. It simplifies static pipeline construction where the path is
// a compile-time constant.
func MustWhenPath(path string, build func(sub *Pipeline)) Middleware {
	m, err := WhenPath(path, build)
	if err != nil {
		panic(err)
	}
	return m
}

func (f *pathFork) Process(r *http.Request, next Next) (*common.Response, error) {
	segments := SplitPath(r.URL.Path)
	if !segmentsHavePrefix(segments, f.prefix) {
		return next.Invoke(r)
	}
	return f.sub.Dispatch(stripPrefix(r, len(f.prefix), segments))
}

// stripPrefix returns a shallow copy of the request whose path is the suffix
// remaining after the first n matched segments. The pre-rewrite path is
// recorded in the request context unless an enclosing fork already recorded
// one; the first fork wins, so OriginalPath always yields the full inbound
// path.
func stripPrefix(r *http.Request, n int, segments []string) *http.Request {
	ctx := r.Context()
	if _, ok := OriginalPath(r); !ok {
		ctx = context.WithValue(ctx, originalPathKey{}, r.URL.Path)
	}

	u := new(url.URL)
	*u = *r.URL
	u.Path = strings.Join(segments[n:], "/")
	u.RawPath = ""

	r2 := r.WithContext(ctx)
	r2.URL = u
	return r2
}
