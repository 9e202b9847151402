package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Buffer operation metrics
	bufferOperationsTotal   *prometheus.CounterVec
	bufferOperationDuration *prometheus.HistogramVec
	buffersTotal            prometheus.Gauge
	bufferDataSizeBytes     prometheus.Gauge

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tlvkit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tlvkit_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		bufferOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_buffer_operations_total",
				Help: "Total number of buffer operations",
			},
			[]string{"operation", "status"},
		),

		bufferOperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tlvkit_buffer_operation_duration_seconds",
				Help:    "Buffer operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		buffersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tlvkit_buffers_total",
				Help: "Total number of stored buffers",
			},
		),

		bufferDataSizeBytes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tlvkit_buffer_data_size_bytes",
				Help: "Total size of stored buffer data in bytes",
			},
		),

		authRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),
	}

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordBufferOperation records a buffer operation
func (m *Metrics) RecordBufferOperation(operation string, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}

	m.bufferOperationsTotal.WithLabelValues(operation, status).Inc()
	m.bufferOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateStoreStats updates store statistics gauges
func (m *Metrics) UpdateStoreStats(buffers int, dataSize int64) {
	m.buffersTotal.Set(float64(buffers))
	m.bufferDataSizeBytes.Set(float64(dataSize))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		duration := time.Since(start)
		m.RecordHTTPRequest(method, endpoint, rw.statusCode, duration)
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
