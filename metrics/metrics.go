package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring the storefront.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of verified webhook events, by event type",
		},
		[]string{"type"},
	)

	WebhookRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_rejected_total",
			Help: "Total number of webhook deliveries that failed signature verification",
		},
	)

	OrdersRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_recorded_total",
			Help: "Total number of orders written to the ledger",
		},
	)

	OrderInsertFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_insert_failures_total",
			Help: "Total number of ledger writes that failed",
		},
	)

	ContactEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_emails_total",
			Help: "Total number of contact form deliveries, by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		WebhookEventsTotal,
		WebhookRejectedTotal,
		OrdersRecordedTotal,
		OrderInsertFailuresTotal,
		ContactEmailsTotal,
	)
}
