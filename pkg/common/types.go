// Package common provides shared types and utilities used across the SPipeline framework.
package common

import (
	"net/http"
)

// Handler is the terminal-handler contract: a component that converts a
// request directly into a response with no concept of "next" middleware.
// Handlers are typically placed at the end of a pipeline via pipeline.Handle.
type Handler interface {
	// Handle processes the request and produces a response.
	// A Handler returns either a non-nil Response or an error, never both.
	Handle(r *http.Request) (*Response, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(r *http.Request) (*Response, error)

// Handle calls f(r).
func (f HandlerFunc) Handle(r *http.Request) (*Response, error) {
	return f(r)
}
