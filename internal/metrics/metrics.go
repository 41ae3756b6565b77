package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolutionsTotal        *prometheus.CounterVec
	validationFailuresTotal *prometheus.CounterVec
)

// InitMetrics registers all custom metrics with the provided registry
func InitMetrics(registry prometheus.Registerer) {
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_allocator_resolutions_total",
			Help: "Total number of resource resolution calls",
		},
		[]string{"operation", "mode", "outcome"},
	)
	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_allocator_validation_failures_total",
			Help: "Total number of rejected resource specs by validation rule",
		},
		[]string{"rule"},
	)

	registry.MustRegister(resolutionsTotal)
	registry.MustRegister(validationFailuresTotal)
}

// RecordResolution counts one resolution call. No-op before InitMetrics.
func RecordResolution(operation, mode, outcome string) {
	if resolutionsTotal == nil {
		return
	}
	resolutionsTotal.WithLabelValues(operation, mode, outcome).Inc()
}

// RecordValidationFailure counts one rejected spec. No-op before InitMetrics.
func RecordValidationFailure(rule string) {
	if validationFailuresTotal == nil {
		return
	}
	validationFailuresTotal.WithLabelValues(rule).Inc()
}
