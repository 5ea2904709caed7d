// Package metrics defines and registers all custom Prometheus metrics for
// the notes API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nlog"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "duplicate_email" or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_header", "bad_header", "bad_token" or "unknown_account"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected at the auth gate, by reason.",
	},
	[]string{"reason"},
)

// NoteOperationsTotal counts note CRUD outcomes.
// Labels:
//   - operation: "create", "list", "update" or "delete"
//   - result: "success" or "not_found"
var NoteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_operations_total",
		Help:      "Total number of note operations, by operation and result.",
	},
	[]string{"operation", "result"},
)
