package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes, used as the "outcome" label.
const (
	outcomeOK         = "ok"
	outcomeBadRequest = "bad_request"
	outcomeTooLarge   = "too_large"
	outcomeCanceled   = "canceled"
)

// Metrics holds the collectors the server updates.
type Metrics struct {
	requests    *prometheus.CounterVec
	seqLength   prometheus.Histogram
	cellsFilled prometheus.Counter
}

// NewMetrics registers the server collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "locf_requests_total",
			Help: "Fill requests by outcome.",
		}, []string{"outcome"}),
		seqLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "locf_sequence_length",
			Help:    "Number of cells per fill request.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
		cellsFilled: f.NewCounter(prometheus.CounterOpts{
			Name: "locf_cells_filled_total",
			Help: "Missing cells that received a carried value.",
		}),
	}
}
