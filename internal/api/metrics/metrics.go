// Package metrics defines and registers all custom Prometheus metrics for the
// Clean Village sanitation service. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cleanvillage"

// ── Complaint metrics ─────────────────────────────────────────────────────────

// ComplaintsSubmittedTotal counts newly submitted complaints.
// Label:
//   - category: the complaint category token (e.g. "overflowingDrains")
var ComplaintsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_submitted_total",
		Help:      "Total number of complaints submitted, by category.",
	},
	[]string{"category"},
)

// ComplaintsEscalatedTotal counts pending complaints that aged past the
// escalation window and were marked overdue.
var ComplaintsEscalatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_escalated_total",
		Help:      "Total number of complaints escalated to overdue.",
	},
)

// ComplaintsResolvedTotal counts complaints marked resolved by officials.
var ComplaintsResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_resolved_total",
		Help:      "Total number of complaints marked resolved.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts notifications recorded by the dispatcher.
// Label:
//   - kind: "complaint_submission", "escalation", or "resolution"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications recorded, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts notifications dropped because the
// dispatcher queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped due to a full queue.",
	},
)

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts account registrations.
// Label:
//   - role: "citizen" or "official"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
