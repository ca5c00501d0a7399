package server

import (
	"bytes"
	"net/http"

	"github.com/Suhaibinator/SPipeline/pkg/common"
)

// FromHTTP bridges an ordinary http.Handler into the terminal-handler
// contract, so existing handlers (including full routers) can terminate a
// pipeline. The handler's output is captured into a common.Response rather
// than written to the network, which lets wrapping middleware inspect and
// transform it like any other pipeline result.
func FromHTTP(h http.Handler) common.Handler {
	return common.HandlerFunc(func(r *http.Request) (*common.Response, error) {
		cw := newCaptureWriter()
		h.ServeHTTP(cw, r)
		return &common.Response{
			StatusCode: cw.statusCode,
			Header:     cw.header,
			Body:       cw.body.Bytes(),
		}, nil
	})
}

// captureWriter is an http.ResponseWriter that buffers the status code,
// headers, and body instead of writing them to a connection.
type captureWriter struct {
	header      http.Header
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

// Header returns the buffered header map.
func (cw *captureWriter) Header() http.Header {
	return cw.header
}

// WriteHeader records the status code. Like net/http, only the first call
// has any effect.
func (cw *captureWriter) WriteHeader(statusCode int) {
	if cw.wroteHeader {
		return
	}
	cw.statusCode = statusCode
	cw.wroteHeader = true
}

// Write buffers the body bytes, implying a 200 status if none was set.
func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.body.Write(b)
}
