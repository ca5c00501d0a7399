package pipeline

import (
	"net/http"

	"github.com/Suhaibinator/SPipeline/pkg/common"
)

// Handle adapts a terminal handler into a Middleware. The continuation is
// ignored, so a Handle middleware always terminates the pipeline; it is
// generally only useful at the end of a pipeline.
func Handle(h common.Handler) Middleware {
	return handleMiddleware{handler: h}
}

// HandleFunc adapts a terminal handler function into a Middleware.
// It is shorthand for Handle(common.HandlerFunc(f)).
func HandleFunc(f func(r *http.Request) (*common.Response, error)) Middleware {
	return handleMiddleware{handler: common.HandlerFunc(f)}
}

type handleMiddleware struct {
	handler common.Handler
}

func (m handleMiddleware) Process(r *http.Request, _ Next) (*common.Response, error) {
	return m.handler.Handle(r)
}

// HandleNext adapts a wrapping-style function into a Middleware. The function
// receives the continuation and may invoke it, short-circuit with its own
// response, or transform the delegated result before returning it.
func HandleNext(f func(r *http.Request, next Next) (*common.Response, error)) Middleware {
	return handleNextMiddleware{fn: f}
}

type handleNextMiddleware struct {
	fn func(r *http.Request, next Next) (*common.Response, error)
}

func (m handleNextMiddleware) Process(r *http.Request, next Next) (*common.Response, error) {
	return m.fn(r, next)
}
