// Package server adapts a pipeline to net/http so it can be served by a
// standard HTTP server. It is the host-side collaborator of the pipeline: it
// invokes Dispatch once per request, writes the resulting response, and maps
// dispatch failures to server-error responses.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"go.uber.org/zap"
)

// Config defines the configuration for the server adapter.
type Config struct {
	Logger *zap.Logger // Logger for dispatch failures; nil uses a no-op logger
}

// Handler serves a pipeline over HTTP. It implements http.Handler and
// supports graceful shutdown: after Shutdown is called, new requests are
// rejected with 503 while in-flight dispatches are allowed to finish.
type Handler struct {
	pipeline   *pipeline.Pipeline
	logger     *zap.Logger
	wg         sync.WaitGroup
	shutdown   bool
	shutdownMu sync.RWMutex
}

// New creates a Handler serving the given pipeline. The pipeline must be
// fully built; it is treated as immutable from this point on.
func New(p *pipeline.Pipeline, config Config) *Handler {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		pipeline: p,
		logger:   logger,
	}
}

// ServeHTTP dispatches the request through the pipeline and writes the
// resulting response. A dispatch error, including pipeline.ErrNoHandler, is
// mapped to a 500 Internal Server Error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// First add to the wait group, then check shutdown status, so Shutdown
	// never misses an in-flight request
	h.wg.Add(1)
	defer h.wg.Done()

	h.shutdownMu.RLock()
	isShutdown := h.shutdown
	h.shutdownMu.RUnlock()

	if isShutdown {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	resp, err := h.pipeline.Dispatch(req)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoHandler) {
			h.logger.Warn("No handler for request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
			)
		} else {
			h.logger.Error("Dispatch failed",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Error(err),
			)
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := resp.WriteTo(w); err != nil {
		h.logger.Error("Failed to write response",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
	}
}

// Shutdown stops accepting new requests and waits for in-flight dispatches
// to finish, or for the context to be canceled, whichever comes first.
func (h *Handler) Shutdown(ctx context.Context) error {
	// Mark the handler as shutting down
	h.shutdownMu.Lock()
	h.shutdown = true
	h.shutdownMu.Unlock()

	// Wait for all requests to finish or for the context to be canceled
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
