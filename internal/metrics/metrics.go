package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_checkins_total",
			Help: "Total number of check-in attempts by outcome",
		},
		[]string{"outcome"},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_users_registered_total",
			Help: "Total number of registered users",
		},
	)

	InvoicesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_invoices_created_total",
			Help: "Total number of invoices created",
		},
		[]string{"origin"}, // manual or checkin
	)

	InvoiceRowsAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_invoice_rows_added_total",
			Help: "Total number of invoice rows appended",
		},
	)

	InvoicesVoidedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_invoices_voided_total",
			Help: "Total number of invoices voided",
		},
	)

	MembershipCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_membership_cancellations_total",
			Help: "Total number of membership cancellations",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of the outbound email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn(outcome string) {
	CheckInsTotal.WithLabelValues(outcome).Inc()
}

func RecordUserRegistered() {
	UsersRegisteredTotal.Inc()
}

func RecordInvoiceCreated(origin string) {
	InvoicesCreatedTotal.WithLabelValues(origin).Inc()
}

func RecordInvoiceRowAdded() {
	InvoiceRowsAddedTotal.Inc()
}

func RecordInvoiceVoided() {
	InvoicesVoidedTotal.Inc()
}

func RecordMembershipCancellation() {
	MembershipCancellationsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
