// Package metrics exposes Prometheus metrics for the converter service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion directions, used as the "direction" label.
const (
	ToGregorian = "to_gregorian"
	ToEthiopic  = "to_ethiopic"
	FromJDN     = "from_jdn"
	ToJDN       = "to_jdn"
)

// Collector provides application metrics collection.
//
// Each Collector owns its registry; nothing is registered globally.
type Collector struct {
	registry *prometheus.Registry

	// API Metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Conversion Metrics
	ConversionsTotal   *prometheus.CounterVec
	InvalidInputsTotal *prometheus.CounterVec
	RangeSourceTotal   *prometheus.CounterVec

	// Day Table Metrics
	ImportedDaysTotal prometheus.Counter
	ImportDuration    prometheus.Histogram
}

// NewCollector creates a collector registered on a fresh registry along
// with the Go runtime and process collectors.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"route"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversions_total",
				Help:      "Total number of date conversions by direction",
			},
			[]string{"direction"},
		),

		InvalidInputsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invalid_inputs_total",
				Help:      "Total number of rejected dates by calendar",
			},
			[]string{"calendar"},
		),

		RangeSourceTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "range_requests_total",
				Help:      "Range conversions by where the days came from (table or computed)",
			},
			[]string{"source"},
		),

		ImportedDaysTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "imported_days_total",
				Help:      "Total number of days written to the day table",
			},
		),

		ImportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "import_duration_seconds",
				Help:      "Duration of day-table imports in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
			},
		),
	}
}

// Registry returns the registry the collector's metrics live on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(route, method, status string, elapsed time.Duration) {
	c.RequestsTotal.WithLabelValues(route, method, status).Inc()
	c.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordConversion increments the conversion counter for direction.
func (c *Collector) RecordConversion(direction string) {
	c.ConversionsTotal.WithLabelValues(direction).Inc()
}

// RecordInvalidInput increments the rejected-input counter for a calendar
// ("ethiopic", "gregorian" or "jdn").
func (c *Collector) RecordInvalidInput(calendar string) {
	c.InvalidInputsTotal.WithLabelValues(calendar).Inc()
}

// RecordRangeSource counts a range conversion by its source.
func (c *Collector) RecordRangeSource(source string) {
	c.RangeSourceTotal.WithLabelValues(source).Inc()
}

// RecordImport records a finished day-table import.
func (c *Collector) RecordImport(days int, elapsed time.Duration) {
	c.ImportedDaysTotal.Add(float64(days))
	c.ImportDuration.Observe(elapsed.Seconds())
}
