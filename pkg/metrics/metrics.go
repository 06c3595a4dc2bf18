// Package metrics holds the Prometheus collectors shared across packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodtrace"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// HealthIssues counts issues raised by product analyses, by issue type.
	HealthIssues = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_issues_total",
		Help:      "Issues raised by product health analyses.",
	}, []string{"type"})

	// ProductsCreated counts products listed by manufacturers.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Products listed by manufacturers.",
	})

	// TraceabilityEntries counts hash chain entries appended, by stage.
	TraceabilityEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "traceability_entries_total",
		Help:      "Traceability entries appended to product chains.",
	}, []string{"stage"})

	// ChainVerifications counts chain verifications, by outcome.
	ChainVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_verifications_total",
		Help:      "Traceability chain verifications.",
	}, []string{"valid"})

	// RecallNotices counts recall notices handled by the worker, by result.
	RecallNotices = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recall_notices_total",
		Help:      "Recall notices processed by the background worker.",
	}, []string{"result"})
)
