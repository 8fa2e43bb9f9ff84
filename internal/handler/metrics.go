package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the API.
var Metrics = struct {
	RequestDuration    *prometheus.HistogramVec
	RequestsInFlight   prometheus.Gauge
	PipelineDuration   *prometheus.HistogramVec
	PipelineRuns       *prometheus.CounterVec
	GenerationFailures prometheus.Counter
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics() {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creatorlens_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "creatorlens_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// Pipeline runs span many upstream calls, so the buckets reach well past
	// the default 10s ceiling.
	Metrics.PipelineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creatorlens_pipeline_duration_seconds",
			Help:    "Analysis pipeline duration in seconds, by flow.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"flow"},
	)

	Metrics.PipelineRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creatorlens_pipeline_runs_total",
			Help: "Pipeline executions, by flow and outcome.",
		},
		[]string{"flow", "outcome"},
	)

	Metrics.GenerationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatorlens_generation_failures_total",
			Help: "Generative backend failures that degraded a response.",
		},
	)

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.PipelineDuration,
		Metrics.PipelineRuns,
		Metrics.GenerationFailures,
	)
}

// observePipeline records duration and outcome for one pipeline run.
// Degraded runs surface as success here; the handlers count their embedded
// generation failures separately.
func observePipeline(flow string, start time.Time, err error) {
	Metrics.PipelineDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	Metrics.PipelineRuns.WithLabelValues(flow, outcome).Inc()
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(path, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
