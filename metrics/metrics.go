// Package metrics records Prometheus metrics for searches and can dump them
// in the node_exporter textfile format when the command exits.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/degrees/search"
)

// Search outcomes, the values of the outcome label.
const (
	OutcomeConnected    = "connected"
	OutcomeNotConnected = "not_connected"
	OutcomeCancelled    = "cancelled"
	OutcomeError        = "error"
)

// Recorder holds the search metrics of one registry.
type Recorder struct {
	searches *prometheus.CounterVec
	explored prometheus.Histogram
	degrees  prometheus.Histogram
	duration prometheus.Histogram
}

// NewRecorder registers the search metrics with reg. A nil reg uses a fresh
// registry, which keeps tests and repeated runs independent.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		// searches counts finished searches by outcome
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "degrees_searches_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),

		// explored tracks distinct people removed from the frontier per search
		explored: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "degrees_search_explored_people",
			Help:    "People explored per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),

		// degrees tracks path length of connected searches
		degrees: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "degrees_search_degrees",
			Help:    "Degrees of separation of connected searches",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "degrees_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
	}
}

// Observe records one search. res may be nil when the search failed validation.
func (r *Recorder) Observe(res *search.Result, err error, elapsed time.Duration) {
	r.duration.Observe(elapsed.Seconds())

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.searches.WithLabelValues(OutcomeCancelled).Inc()
	case err != nil:
		r.searches.WithLabelValues(OutcomeError).Inc()
	case res.Connected:
		r.searches.WithLabelValues(OutcomeConnected).Inc()
		r.degrees.Observe(float64(res.Path.Degrees()))
	default:
		r.searches.WithLabelValues(OutcomeNotConnected).Inc()
	}

	if res != nil {
		r.explored.Observe(float64(res.Explored))
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, atomically replacing any previous file.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
