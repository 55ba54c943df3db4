// Package metrics содержит prometheus-метрики сервиса закладок.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// CheckResultOK - URI ответил 200
	CheckResultOK = "ok"
	// CheckResultFailed - любой другой исход проверки
	CheckResultFailed = "failed"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	URIChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uri_checks_total",
			Help: "Total number of outbound URI checks by result",
		},
		[]string{"result"},
	)

	URICheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "uri_check_duration_seconds",
			Help:    "Duration of outbound URI checks in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful short name redirects",
		},
	)

	BookmarksStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookmarks_stored",
			Help: "Number of bookmarks currently held in memory",
		},
	)
)

// RecordCheck учитывает результат проверки URI.
func RecordCheck(ok bool, seconds float64) {
	result := CheckResultFailed
	if ok {
		result = CheckResultOK
	}
	URIChecksTotal.WithLabelValues(result).Inc()
	URICheckDuration.Observe(seconds)
}
