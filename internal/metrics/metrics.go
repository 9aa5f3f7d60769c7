// Package metrics defines the custom Prometheus metrics for the service. It
// is the single source of truth for metric names, labels, and help strings.
// Metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "elective"

// AuthFailuresTotal counts rejected requests at the auth and role gates.
// Label:
//   - reason: "missing_token", "expired_token", "invalid_token", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth or role gate.",
	},
	[]string{"reason"},
)

// MutationsTotal counts successful resource mutations.
// Labels:
//   - resource: table name (e.g. "addresses")
//   - operation: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "operation"},
)

// CacheTotal counts list-cache lookups by result.
// Labels:
//   - resource: table name
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of list cache lookups, labelled by result.",
	},
	[]string{"resource", "result"},
)
