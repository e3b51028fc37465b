// Package metrics exposes Prometheus counters for form submissions and
// outbound notifications.
//
// Usage:
//
//	metrics.RecordSubmission(metrics.FormBooking, metrics.OutcomeSuccess)
//	metrics.RecordNotification("booking_admin", err)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FormBooking       = "booking"
	FormContact       = "contact"
	FormFooterContact = "footer_contact"
	FormNewsletter    = "newsletter"

	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

var (
	// SubmissionsTotal counts public form submissions by form and outcome.
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_submissions_total",
			Help: "Total number of public form submissions",
		},
		[]string{"form", "outcome"},
	)

	// NotificationsTotal counts notification attempts by kind and outcome.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellbeing_notifications_total",
			Help: "Total number of outbound notification attempts",
		},
		[]string{"kind", "outcome"},
	)
)

func RecordSubmission(form, outcome string) {
	SubmissionsTotal.WithLabelValues(form, outcome).Inc()
}

func RecordNotification(kind string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	NotificationsTotal.WithLabelValues(kind, outcome).Inc()
}
