// Package observability exposes Prometheus metrics for the activities service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts partitioned by outcome.",
	}, []string{"outcome"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rosterSize)
}

// Outcome labels for registry mutations.
const (
	OutcomeSuccess    = "success"
	OutcomeNotFound   = "not_found"
	OutcomeDuplicate  = "duplicate"
	OutcomeFull       = "full"
	OutcomeNotMember  = "not_registered"
	OutcomeBadRequest = "invalid_input"
)

// RecordSignup counts a signup attempt.
func RecordSignup(outcome string) {
	signupsTotal.WithLabelValues(outcome).Inc()
}

// RecordUnregistration counts an unregister attempt.
func RecordUnregistration(outcome string) {
	unregistrationsTotal.WithLabelValues(outcome).Inc()
}

// SetRosterSize updates the roster gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterSize.WithLabelValues(activity).Set(float64(size))
}
