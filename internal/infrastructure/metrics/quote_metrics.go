package metrics

import (
	"strings"

	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records the outcome of quote calculations.
type QuoteMetrics struct {
	computed  prometheus.Counter
	failures  *prometheus.CounterVec
	lineItems prometheus.Histogram
	totals    prometheus.Histogram
}

var _ interfaces.IQuoteRecorder = (*QuoteMetrics)(nil)

// NewQuoteMetrics registers the quote metrics on the provided registerer.
// A nil registerer yields a recorder that drops everything.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	computed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotes_computed_total",
		Help: "Quotes successfully computed.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_failures_total",
		Help: "Quote requests rejected or failed, by reason.",
	}, []string{"reason"})
	lineItems := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_line_items",
		Help:    "Number of line items per computed quote.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	totals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_total_amount",
		Help:    "Quote totals in currency units.",
		Buckets: prometheus.ExponentialBuckets(50, 2, 12),
	})
	reg.MustRegister(computed, failures, lineItems, totals)
	return &QuoteMetrics{
		computed:  computed,
		failures:  failures,
		lineItems: lineItems,
		totals:    totals,
	}
}

// ObserveQuote records one successful calculation.
func (m *QuoteMetrics) ObserveQuote(lineItems int, total float64) {
	if m == nil || m.computed == nil {
		return
	}
	m.computed.Inc()
	m.lineItems.Observe(float64(lineItems))
	m.totals.Observe(total)
}

// IncFailure increments the failure counter for reason.
func (m *QuoteMetrics) IncFailure(reason string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "unknown"
	}
	return value
}
