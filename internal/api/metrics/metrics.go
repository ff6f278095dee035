// Package metrics defines and registers all custom Prometheus metrics for the
// parcel-forwarding admin API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parcel_admin"

// ParcelsCreatedTotal counts newly registered parcels.
// Label:
//   - pricing_mode: "auto" or "manual"
var ParcelsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parcels_created_total",
		Help:      "Total number of parcels registered, by pricing mode.",
	},
	[]string{"pricing_mode"},
)

// StatusUpdatesTotal counts applied status changes.
// Label:
//   - status: the new parcel status token (e.g. "ARRIVED_HAITI")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of parcel status updates applied, by new status.",
	},
	[]string{"status"},
)

// ScanDedupTotal counts duplicate-scan decisions.
// Label:
//   - result: "hit" (duplicate scan, skipped) or "miss" (applied)
var ScanDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_dedup_total",
		Help:      "Total number of duplicate-scan checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts recorded payments.
// Label:
//   - method: "CASH", "MONCASH", "CARD", or "BANK_TRANSFER"
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded, by method.",
	},
	[]string{"method"},
)

// NotificationsTotal counts notifier jobs by kind and outcome.
// Labels:
//   - kind: "status_change" or "invoice_email"
//   - result: "delivered" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification jobs processed, by kind and result.",
	},
	[]string{"kind", "result"},
)
