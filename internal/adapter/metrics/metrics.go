// Package metrics exposes Prometheus metrics for the claims backend. All
// collectors live in a private registry owned by the Recorder.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// Recorder holds the application collectors.
type Recorder struct {
	registry *prometheus.Registry

	claimsSubmitted      prometheus.Counter
	claimTransitions     *prometheus.CounterVec
	fraudScreenings      *prometheus.CounterVec
	fraudScreeningTime   prometheus.Histogram
	oracleCalls          *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	workerTasks          *prometheus.CounterVec
	buildInfo            *prometheus.GaugeVec

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Recorder with every collector registered, plus the Go
// runtime and process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		claimsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "claims_submitted_total",
			Help: "Total number of submitted claims.",
		}),
		claimTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claim_transitions_total",
			Help: "Claim status transitions.",
		}, []string{"from", "to"}),
		fraudScreenings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_screenings_total",
			Help: "Fraud screening attempts by outcome.",
		}, []string{"outcome"}),
		fraudScreeningTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraud_screening_duration_seconds",
			Help:    "Fraud screener call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		oracleCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_calls_total",
			Help: "Verdict oracle calls by outcome.",
		}, []string{"outcome"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Notifications that could not be delivered.",
		}, []string{"event"}),
		workerTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_tasks_total",
			Help: "Background tasks by outcome.",
		}, []string{"outcome"}),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Claims backend build information.",
		}, []string{"version", "commit"}),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.claimsSubmitted,
		r.claimTransitions,
		r.fraudScreenings,
		r.fraudScreeningTime,
		r.oracleCalls,
		r.notificationFailures,
		r.workerTasks,
		r.buildInfo,
		r.httpInFlight,
		r.httpRequestsTotal,
		r.httpRequestDuration,
	)

	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// SetBuildInfo sets build_info{version,commit} to 1.
func (r *Recorder) SetBuildInfo(version, commit string) {
	r.buildInfo.WithLabelValues(version, commit).Set(1)
}

func (r *Recorder) ClaimSubmitted() { r.claimsSubmitted.Inc() }

func (r *Recorder) ClaimTransition(from, to domain.ClaimStatus) {
	r.claimTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// FraudScreening records one screening attempt. elapsed is observed only for
// attempts that reached the screener.
func (r *Recorder) FraudScreening(outcome string, elapsed time.Duration) {
	r.fraudScreenings.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		r.fraudScreeningTime.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) OracleCall(outcome string) { r.oracleCalls.WithLabelValues(outcome).Inc() }

func (r *Recorder) NotificationFailed(event domain.NotificationEvent) {
	r.notificationFailures.WithLabelValues(event.String()).Inc()
}

func (r *Recorder) WorkerTask(outcome string) { r.workerTasks.WithLabelValues(outcome).Inc() }

// Instrument measures request count, latency and in-flight requests. It must
// wrap the ServeMux directly so the matched route pattern is visible after
// the request is served; unmatched requests are labelled "unmatched".
func (r *Recorder) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.httpInFlight.Inc()
		defer r.httpInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, req)

		path := req.Pattern
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(sw.code)

		r.httpRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())
		r.httpRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
