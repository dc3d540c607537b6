// Package metrics defines and registers all custom Prometheus metrics for
// the restaurant API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// ── Access gate metrics ───────────────────────────────────────────────────────

// TokensIssuedTotal counts session tokens minted by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// AuthFailuresTotal counts requests rejected by the authentication stage.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "expired_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// AccessDeniedTotal counts requests rejected by the authorization stage.
// Label:
//   - reason: "unknown_user" or "role_mismatch"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected during role authorization.",
	},
	[]string{"reason"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts first-time user registrations (idempotent
// replays are not counted).
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of new user registrations.",
	},
)

// PaymentIntentsTotal counts payment intents created with the provider.
// Label:
//   - result: "created", "replayed", or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment-intent requests, by result.",
	},
	[]string{"result"},
)

// PaymentAmount observes intent amounts in minor currency units.
var PaymentAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount_minor_units",
		Help:      "Distribution of payment-intent amounts in minor units.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 8), // 1.00 … ~163k major units
	},
)
