// Package metrics holds the Prometheus collectors for indexing and search.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "docindex"

// Metrics groups the domain collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	searchRequests   *prometheus.CounterVec
	searchDuration   prometheus.Histogram
	searchResults    prometheus.Histogram
	documentsIndexed *prometheus.CounterVec
	documentsDeleted prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		searchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_requests_total",
				Help:      "Total number of search requests.",
			},
			[]string{"mode", "status"}, // mode: query | browse
		),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Time spent loading and ranking the corpus.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		searchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of documents returned per search.",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
			},
		),
		documentsIndexed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_indexed_total",
				Help:      "Documents categorized on create or text update.",
			},
			[]string{"category"},
		),
		documentsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "documents_deleted_total",
				Help:      "Delete calls that completed.",
			},
		),
	}

	for _, c := range []prometheus.Collector{
		m.searchRequests,
		m.searchDuration,
		m.searchResults,
		m.documentsIndexed,
		m.documentsDeleted,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveSearch records one search call.
func (m *Metrics) ObserveSearch(mode string, elapsed time.Duration, results int, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.searchRequests.WithLabelValues(mode, status).Inc()
	m.searchDuration.Observe(elapsed.Seconds())
	if err == nil {
		m.searchResults.Observe(float64(results))
	}
}

// IncIndexed counts a document (re)categorized into category.
func (m *Metrics) IncIndexed(category string) {
	if m == nil {
		return
	}
	m.documentsIndexed.WithLabelValues(category).Inc()
}

// IncDeleted counts a completed delete.
func (m *Metrics) IncDeleted() {
	if m == nil {
		return
	}
	m.documentsDeleted.Inc()
}
