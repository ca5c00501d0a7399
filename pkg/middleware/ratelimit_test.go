package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"go.uber.org/ratelimit"
)

func TestRateLimitSmoothsThroughput(t *testing.T) {
	p := pipeline.New()
	p.Add(RateLimitWith(ratelimit.New(100, ratelimit.WithoutSlack)))
	p.Add(okHandler())

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := p.Dispatch(httptest.NewRequest("GET", "http://example.com/", nil)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	elapsed := time.Since(start)

	// At 100 rps the second and third dispatch wait ~10ms each
	if elapsed < 20*time.Millisecond {
		t.Errorf("Expected 3 dispatches to take at least 20ms at 100 rps, took %v", elapsed)
	}
}

func TestRateLimitPassesResult(t *testing.T) {
	p := pipeline.New()
	p.Add(RateLimit(1000))
	p.Add(okHandler())

	resp, err := p.Dispatch(httptest.NewRequest("GET", "http://example.com/", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(resp.Body) != "OK" {
		t.Errorf("Expected body %q, got %q", "OK", string(resp.Body))
	}
}
