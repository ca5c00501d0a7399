// Package pipeline provides a forward-only request-dispatch engine.
// Every request is sent through an ordered chain of middleware, each of which
// may produce a response, modify the request, delegate to the rest of the
// chain, or post-process the delegated result. Middleware always executes in
// the order in which it was registered.
package pipeline

import (
	"errors"
	"net/http"

	"github.com/Suhaibinator/SPipeline/pkg/common"
)

// ErrNoHandler is returned by Dispatch when the pipeline is exhausted without
// any middleware producing a response. The host is expected to map it to a
// server-error response.
var ErrNoHandler = errors.New("pipeline: no handler produced a response")

// Middleware is the unit of composition within a pipeline.
// Implementations must call next.Invoke in order to pass control to the next
// middleware in the pipeline, or produce a response themselves.
type Middleware interface {
	// Process handles the request. It may produce a response directly, or
	// delegate to the rest of the pipeline via next.Invoke and optionally
	// transform the delegated result before returning it. Invoking next more
	// than once per request is outside the usage contract.
	Process(r *http.Request, next Next) (*common.Response, error)
}

// Next is a handle used to invoke the rest of the pipeline from a fixed
// position. It is valid only for the duration of the Dispatch call that
// created it and must not be retained across requests.
type Next struct {
	pipeline *Pipeline
	index    int
}

// Invoke resumes the owning pipeline at the bound position.
func (n Next) Invoke(r *http.Request) (*common.Response, error) {
	return n.pipeline.invoke(n.index, r)
}

// Pipeline is an ordered, append-only chain of middleware. It is built once
// during application setup and must not be modified after the first dispatch;
// a built pipeline is safe for concurrent use by multiple requests.
type Pipeline struct {
	middlewares []Middleware
}

// New creates a new, empty pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Add appends a middleware to the end of the pipeline and returns the
// pipeline for chaining. Middleware runs in insertion order.
func (p *Pipeline) Add(m Middleware) *Pipeline {
	p.middlewares = append(p.middlewares, m)
	return p
}

// Len reports the number of middleware registered in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// Dispatch sends the request through the pipeline, starting at the first
// middleware. The result of the terminating middleware is returned verbatim;
// if no middleware produces a response the dispatch fails with ErrNoHandler.
func (p *Pipeline) Dispatch(r *http.Request) (*common.Response, error) {
	return p.invoke(0, r)
}

// invoke runs the middleware at the given index, handing it a continuation
// bound to index+1. An index past the end of the chain means no middleware
// was left to handle the request.
func (p *Pipeline) invoke(index int, r *http.Request) (*common.Response, error) {
	if index < len(p.middlewares) {
		return p.middlewares[index].Process(r, Next{pipeline: p, index: index + 1})
	}
	return nil, ErrNoHandler
}
