// Package metrics exposes Prometheus collectors for outbound provider calls.
package metrics

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	pkghttp "weather-query-api/pkg/http"
	"weather-query-api/pkg/log"
)

// ProviderMetrics records every call made through pkg/http and logs it.
type ProviderMetrics struct {
	registry *prometheus.Registry

	providerRequestsTotal   *prometheus.CounterVec
	providerErrorsTotal     *prometheus.CounterVec
	providerRequestDuration *prometheus.HistogramVec
}

var _ pkghttp.HTTPLogger = (*ProviderMetrics)(nil)

// NewProviderMetrics creates the collectors and registers them on registry.
func NewProviderMetrics(registry *prometheus.Registry) (*ProviderMetrics, error) {
	m := &ProviderMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ProviderMetrics) initMetrics() {
	m.providerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Total number of requests to weather providers",
		},
		[]string{"provider", "method", "status_code"},
	)

	m.providerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_errors_total",
			Help: "Total number of failed weather provider calls",
		},
		[]string{"provider", "error_type"},
	)

	m.providerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_request_duration_seconds",
			Help:    "Time taken by weather provider calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"provider"},
	)
}

// Describe implements prometheus.Collector
func (m *ProviderMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.providerRequestsTotal.Describe(ch)
	m.providerErrorsTotal.Describe(ch)
	m.providerRequestDuration.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *ProviderMetrics) Collect(ch chan<- prometheus.Metric) {
	m.providerRequestsTotal.Collect(ch)
	m.providerErrorsTotal.Collect(ch)
	m.providerRequestDuration.Collect(ch)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ProviderMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

func (m *ProviderMetrics) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	log.Debug("Calling provider", zap.String("method", method), zap.String("url", rawURL))
}

func (m *ProviderMetrics) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	provider := providerName(rawURL)
	m.observe(provider, method, httpStatus, latency)

	log.Debug("Provider answered",
		zap.String("provider", provider),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (m *ProviderMetrics) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	provider := providerName(rawURL)
	m.observe(provider, method, httpStatus, latency)
	m.providerErrorsTotal.WithLabelValues(provider, errorType(httpStatus, err)).Inc()

	log.Warn("Provider call failed",
		zap.String("provider", provider),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", truncate(responseBody, 512)),
		zap.Error(err))
}

func (m *ProviderMetrics) observe(provider, method string, httpStatus int, latency int64) {
	m.providerRequestsTotal.WithLabelValues(provider, method, strconv.Itoa(httpStatus)).Inc()
	m.providerRequestDuration.WithLabelValues(provider).Observe((time.Duration(latency) * time.Millisecond).Seconds())
}

// providerName labels a call by host so query strings never reach label values
func providerName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Hostname()
}

func errorType(httpStatus int, err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case httpStatus == 0:
		return "network"
	case httpStatus >= 200 && httpStatus < 300:
		return "decode"
	default:
		return "http_status"
	}
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
