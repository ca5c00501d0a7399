// Package metrics provides Prometheus instrumentation for SPipeline dispatches.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config defines the configuration for dispatch metrics.
type Config struct {
	Registry      prometheus.Registerer // Prometheus registry; nil uses the default registerer
	Namespace     string                // Namespace for metrics
	Subsystem     string                // Subsystem for metrics
	EnableLatency bool                  // Enable the dispatch latency histogram
	EnableErrors  bool                  // Enable the dispatch error counter
}

// Collector holds the Prometheus collectors for a pipeline and produces the
// middleware that drives them. A Collector is registered once at setup time
// and shared by all dispatches.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

// NewCollector creates the collectors described by the config and registers
// them with the configured registry. Registration failures (such as duplicate
// registration) are returned to the caller.
func NewCollector(cfg Config) (*Collector, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "requests_total",
			Help:      "Total number of requests dispatched through the pipeline",
		}, []string{"method", "status"}),
	}
	if err := registry.Register(c.requestsTotal); err != nil {
		return nil, err
	}

	if cfg.EnableLatency {
		c.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "request_duration_seconds",
			Help:      "Dispatch latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"})
		if err := registry.Register(c.requestDuration); err != nil {
			return nil, err
		}
	}

	if cfg.EnableErrors {
		c.requestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "request_errors_total",
			Help:      "Total number of dispatches that returned an error",
		}, []string{"method"})
		if err := registry.Register(c.requestErrors); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Middleware returns a wrapping middleware that records metrics for
// everything after it in the pipeline.
func (c *Collector) Middleware() pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		start := time.Now()

		resp, err := next.Invoke(r)

		if c.requestDuration != nil {
			c.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			if c.requestErrors != nil {
				c.requestErrors.WithLabelValues(r.Method).Inc()
			}
			return nil, err
		}

		c.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(resp.StatusCode)).Inc()
		return resp, nil
	})
}

// Handler returns an HTTP handler that exposes the gathered metrics in the
// Prometheus text format, for mounting at /metrics.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
