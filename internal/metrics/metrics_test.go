package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/checkin", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/checkin", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/user", "201", 0.1)
	RecordHTTPRequest("POST", "/api/user", "201", 0.2)
	RecordHTTPRequest("POST", "/api/user", "400", 0.05)

	created := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/user", "201"))
	rejected := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/user", "400"))

	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordCheckIn(t *testing.T) {
	CheckInsTotal.Reset()

	RecordCheckIn("success")
	RecordCheckIn("success")
	RecordCheckIn("no_credit")
	RecordCheckIn("expired")

	success := testutil.ToFloat64(CheckInsTotal.WithLabelValues("success"))
	noCredit := testutil.ToFloat64(CheckInsTotal.WithLabelValues("no_credit"))
	expired := testutil.ToFloat64(CheckInsTotal.WithLabelValues("expired"))

	assert.Equal(t, float64(2), success)
	assert.Equal(t, float64(1), noCredit)
	assert.Equal(t, float64(1), expired)
}

func TestRecordInvoiceCreated(t *testing.T) {
	InvoicesCreatedTotal.Reset()

	RecordInvoiceCreated("manual")
	RecordInvoiceCreated("checkin")
	RecordInvoiceCreated("checkin")

	manual := testutil.ToFloat64(InvoicesCreatedTotal.WithLabelValues("manual"))
	checkin := testutil.ToFloat64(InvoicesCreatedTotal.WithLabelValues("checkin"))

	assert.Equal(t, float64(1), manual)
	assert.Equal(t, float64(2), checkin)
}

func TestRecordMembershipCancellation(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_membership_cancellations_total_test",
			Help: "Total number of membership cancellations",
		},
	)

	oldCounter := MembershipCancellationsTotal
	MembershipCancellationsTotal = testCounter
	defer func() { MembershipCancellationsTotal = oldCounter }()

	RecordMembershipCancellation()
	RecordMembershipCancellation()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("welcome", "sent")
	RecordEmail("welcome", "failed")
	RecordEmail("invoice_receipt", "sent")

	welcomeSent := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "sent"))
	welcomeFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("welcome", "failed"))
	receiptSent := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("invoice_receipt", "sent"))

	assert.Equal(t, float64(1), welcomeSent)
	assert.Equal(t, float64(1), welcomeFailed)
	assert.Equal(t, float64(1), receiptSent)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}
