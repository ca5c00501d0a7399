package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(t *testing.T, cfg Config) (*Collector, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	cfg.Registry = registry
	c, err := NewCollector(cfg)
	if err != nil {
		t.Fatalf("Expected no error creating collector, got %v", err)
	}
	return c, registry
}

func TestCollectorCountsRequests(t *testing.T) {
	c, _ := newTestCollector(t, Config{Namespace: "spipeline"})

	p := pipeline.New()
	p.Add(c.Middleware())
	p.Add(pipeline.HandleFunc(func(r *http.Request) (*common.Response, error) {
		return common.NewResponse(http.StatusOK), nil
	}))

	for i := 0; i < 2; i++ {
		if _, err := p.Dispatch(httptest.NewRequest("GET", "http://example.com/", nil)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	count := testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "200"))
	if count != 2 {
		t.Errorf("Expected requests_total{GET,200} to be 2, got %v", count)
	}
}

func TestCollectorCountsErrors(t *testing.T) {
	c, _ := newTestCollector(t, Config{EnableErrors: true})

	p := pipeline.New()
	p.Add(c.Middleware())
	// Exhausted pipeline: every dispatch errors

	if _, err := p.Dispatch(httptest.NewRequest("GET", "http://example.com/", nil)); err == nil {
		t.Fatal("Expected an error from an exhausted pipeline")
	}

	count := testutil.ToFloat64(c.requestErrors.WithLabelValues("GET"))
	if count != 1 {
		t.Errorf("Expected request_errors_total{GET} to be 1, got %v", count)
	}
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	if _, err := NewCollector(Config{Registry: registry}); err != nil {
		t.Fatalf("Expected no error on first registration, got %v", err)
	}
	if _, err := NewCollector(Config{Registry: registry}); err == nil {
		t.Error("Expected an error on duplicate registration")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c, registry := newTestCollector(t, Config{EnableLatency: true})

	p := pipeline.New()
	p.Add(c.Middleware())
	p.Add(pipeline.HandleFunc(func(r *http.Request) (*common.Response, error) {
		return common.NewResponse(http.StatusOK), nil
	}))
	if _, err := p.Dispatch(httptest.NewRequest("GET", "http://example.com/", nil)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	w := httptest.NewRecorder()
	Handler(registry).ServeHTTP(w, httptest.NewRequest("GET", "http://example.com/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "requests_total") {
		t.Errorf("Expected exposition to contain requests_total, got:\n%s", body)
	}
	if !strings.Contains(body, "request_duration_seconds") {
		t.Errorf("Expected exposition to contain request_duration_seconds, got:\n%s", body)
	}
}
