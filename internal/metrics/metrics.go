package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitzone_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClassesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_classes_created_total",
			Help: "Total number of fitness classes added to the catalog",
		},
		[]string{"intensity"},
	)

	TrainersRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_trainers_registered_total",
			Help: "Total number of trainers registered",
		},
		[]string{"employment"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitzone_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
		[]string{"plan"},
	)

	ReportsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitzone_reports_generated_total",
			Help: "Total number of summary reports generated",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClassCreated(intensity string) {
	ClassesCreatedTotal.WithLabelValues(intensity).Inc()
}

func RecordTrainerRegistered(employment string) {
	TrainersRegisteredTotal.WithLabelValues(employment).Inc()
}

func RecordSubscription(plan string) {
	SubscriptionsCreatedTotal.WithLabelValues(plan).Inc()
}

func RecordReportGenerated() {
	ReportsGeneratedTotal.Inc()
}
