// Package metrics defines and registers all custom Prometheus metrics for the
// studio API. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// ── Booking metrics ──────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - type: the free-text session category as submitted (e.g. "portrait")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by session type.",
	},
	[]string{"type"},
)

// BookingTransitionsTotal counts applied booking status transitions.
// Labels:
//   - from: previous status
//   - to:   new status (a rising "to=pending" rate means admins are reopening
//     cancelled bookings)
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_transitions_total",
		Help:      "Total number of booking status transitions applied.",
	},
	[]string{"from", "to"},
)

// BookingTransitionsRejectedTotal counts rejected status change requests.
// Label:
//   - reason: "invalid_transition", "role_not_allowed", or "forbidden"
var BookingTransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_transitions_rejected_total",
		Help:      "Total number of booking status change requests rejected.",
	},
	[]string{"reason"},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// NotificationsEmittedTotal counts notifications successfully persisted.
// Label:
//   - type: notification type ("booking", "photo", "order", "system")
var NotificationsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of notifications persisted, by type.",
	},
	[]string{"type"},
)

// NotificationsFailedTotal counts notifications that failed to persist.
// Persistence failures are swallowed, so this counter is the only durable
// trace of them.
var NotificationsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification persistence failures (best-effort path).",
	},
)

// DeliveryQueueDepth tracks the notifications waiting in each delivery worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var DeliveryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_delivery_queue_depth",
		Help:      "Current number of notifications pending in each delivery worker channel.",
	},
	[]string{"worker_id"},
)
