// Package metrics defines and registers all custom Prometheus metrics for
// the portal API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry on import via promauto; the
// /metrics endpoint exposes them alongside the HTTP middleware metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// InviteChecksTotal counts invite code resolutions.
// Label:
//   - result: "ok" or "invalid" (miss, inactive account, or lookup failure)
var InviteChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invite_checks_total",
		Help:      "Total number of invite code resolutions, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts that reached the store.
// Label:
//   - result: "ok" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registrations that reached the credential store.",
	},
	[]string{"result"},
)

// SignInsTotal counts sign-in attempts.
// Labels:
//   - surface: "client" or "admin"
//   - result: "ok", "denied" (bad credentials), or "unmapped" (valid
//     credentials with no account row on the surface)
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by surface and result.",
	},
	[]string{"surface", "result"},
)

// SessionsRevokedTotal counts successful sign-out revocations.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by sign-out.",
	},
)

// AdminSavesTotal counts admin console writes.
// Label:
//   - entity: "client", "kpi", "action", or "engagement"
var AdminSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_saves_total",
		Help:      "Total number of admin console writes, by entity.",
	},
	[]string{"entity"},
)

// RateLimitedTotal counts requests rejected by the auth rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
