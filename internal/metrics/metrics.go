// Package metrics defines the Prometheus instruments for the storefront
// client. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// BackendRequestsTotal counts calls against the remote backend.
// Labels:
//   - op: the logical operation (e.g. "cart_add", "login", "products_list")
//   - outcome: "ok", "unauthorized", or "error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the storefront backend.",
	},
	[]string{"op", "outcome"},
)

// BackendRequestDuration measures round-trip time per logical operation.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// SessionInvalidationsTotal counts 401/403 responses that forced the session
// back to anonymous.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions invalidated by an unauthorized backend response.",
	},
)
