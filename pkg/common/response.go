// Package common provides shared types and utilities used across the SPipeline framework.
package common

import (
	"encoding/json"
	"net/http"
)

// Response is the value produced by a middleware that terminates a dispatch.
// Exactly one Response flows back up the pipeline per request; wrapping
// middleware may inspect or replace it before returning it further.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse creates a Response with the given status code and an empty
// header map.
func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
	}
}

// WithBody sets the response body and returns the response for chaining.
func (resp *Response) WithBody(body []byte) *Response {
	resp.Body = body
	return resp
}

// WithString sets the response body from a string and returns the response
// for chaining.
func (resp *Response) WithString(body string) *Response {
	resp.Body = []byte(body)
	return resp
}

// WithHeader sets a header value and returns the response for chaining.
func (resp *Response) WithHeader(key, value string) *Response {
	resp.Header.Set(key, value)
	return resp
}

// WithJSONBody marshals v as JSON into the body, sets the Content-Type
// header, and returns the response for chaining.
func (resp *Response) WithJSONBody(v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	resp.Body = body
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

// Clone returns a copy of the response with its own header map. The body
// bytes are shared and must be treated as read-only.
func (resp *Response) Clone() *Response {
	clone := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       resp.Body,
	}
	if clone.Header == nil {
		clone.Header = make(http.Header)
	}
	return clone
}

// WriteTo writes the response to an http.ResponseWriter: headers first, then
// the status code, then the body. Returns any error from writing the body.
func (resp *Response) WriteTo(w http.ResponseWriter) error {
	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			return err
		}
	}
	return nil
}
