// Package metrics defines and registers all custom Prometheus metrics for
// the league API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "league"

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// TokenVerificationsTotal counts token verification outcomes seen by the
// auth middleware.
// Label:
//   - result: "valid", "malformed", "invalid_signature", "expired", or "absent"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// CatalogOpsTotal counts catalog operations reaching the handlers.
// Labels:
//   - resource: "teams", "players", or "matches"
//   - operation: "list", "get", "create", "update", or "delete"
//   - outcome: "success" or "error"
var CatalogOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_operations_total",
		Help:      "Total number of catalog operations, by resource, operation and outcome.",
	},
	[]string{"resource", "operation", "outcome"},
)

// StandingsCacheTotal counts league-table cache lookups.
// Label:
//   - result: "hit" or "miss"
var StandingsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "standings_cache_total",
		Help:      "Total number of standings cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
