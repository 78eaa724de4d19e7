/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dresume/credit/internal/logfields"
	"github.com/dresume/credit/pkg/observability/metrics"
)

var logger = metrics.Logger

const metricsPath = "/metrics"

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	router *echo.Echo
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider.
// When router is set the /metrics endpoint is registered on it.
func NewPrometheusProvider(router *echo.Echo) metrics.Provider {
	return &promProvider{router: router}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.router == nil {
		return nil
	}

	pp.router.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(prometheus.DefaultGatherer,
		promhttp.HandlerOpts{EnableOpenMetrics: true})))

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the credential client.
type PromMetrics struct {
	callTime      *prometheus.HistogramVec
	callFailures  *prometheus.CounterVec
	loginTime     *prometheus.HistogramVec
	loginFailures *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		callTime: newHistogramVec(metrics.Canister, metrics.CanisterCallTimeMetric,
			"The time (in seconds) it takes to complete a canister call.", "service", "method"),
		callFailures: newCounterVec(metrics.Canister, metrics.CanisterCallFailureMetric,
			"The number of failed canister calls.", "service", "method", "code"),
		loginTime: newHistogramVec(metrics.Session, metrics.LoginTimeMetric,
			"The time (in seconds) it takes to complete a login flow.", "provider"),
		loginFailures: newCounterVec(metrics.Session, metrics.LoginFailureMetric,
			"The number of failed login flows.", "provider", "code"),
		transitions: newCounterVec(metrics.Session, metrics.SessionTransitionMetric,
			"The number of session state transitions.", "state"),
		cacheHits: newCounter(metrics.Cache, metrics.CacheHitMetric,
			"The number of credential cache hits.", nil),
		cacheMisses: newCounter(metrics.Cache, metrics.CacheMissMetric,
			"The number of credential cache misses.", nil),
		httpRequests: newCounterVec(metrics.HTTPClient, "requests_total",
			"The number of outbound HTTP requests.", "client", "code", "method"),
		httpDuration: newHistogramVec(metrics.HTTPClient, "request_seconds",
			"The time (in seconds) outbound HTTP requests take.", "client", "code", "method"),
	}

	registerMetrics(pm)

	return pm
}

// CanisterCallTime records the time of a canister call.
func (pm *PromMetrics) CanisterCallTime(service, method string, value time.Duration) {
	pm.callTime.WithLabelValues(service, method).Observe(value.Seconds())

	logger.Debug("canister call time",
		logfields.WithService(service), logfields.WithMethod(method), logfields.WithDuration(value))
}

func (pm *PromMetrics) CanisterCallFailed(service, method, code string) {
	pm.callFailures.WithLabelValues(service, method, code).Inc()
}

// LoginTime records the time of a completed login flow.
func (pm *PromMetrics) LoginTime(provider string, value time.Duration) {
	pm.loginTime.WithLabelValues(provider).Observe(value.Seconds())

	logger.Debug("login time", logfields.WithService(provider), logfields.WithDuration(value))
}

func (pm *PromMetrics) LoginFailed(provider, code string) {
	pm.loginFailures.WithLabelValues(provider, code).Inc()
}

func (pm *PromMetrics) SessionTransition(state string) {
	pm.transitions.WithLabelValues(state).Inc()
}

func (pm *PromMetrics) CacheHit() {
	pm.cacheHits.Inc()
}

func (pm *PromMetrics) CacheMiss() {
	pm.cacheMisses.Inc()
}

// InstrumentHTTPTransport wraps transport with request counters and latency histograms.
func (pm *PromMetrics) InstrumentHTTPTransport(client metrics.ClientID, transport http.RoundTripper) http.RoundTripper {
	labels := prometheus.Labels{"client": string(client)}

	return promhttp.InstrumentRoundTripperCounter(pm.httpRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(pm.httpDuration.MustCurryWith(labels), transport))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.callTime, pm.callFailures, pm.loginTime, pm.loginFailures, pm.transitions,
		pm.cacheHits, pm.cacheMisses, pm.httpRequests, pm.httpDuration,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func newHistogramVec(subsystem, name, help string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}
