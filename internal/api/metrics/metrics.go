// Package metrics defines and registers all custom Prometheus metrics of the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ── Authentication ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "email_not_found", "account_not_active",
//     "invalid_credentials" or "token_creation_failed"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "success" or "email_in_use"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registrations, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts bearer tokens seen by the request
// authenticator.
// Label:
//   - result: "valid", "invalid" or "absent"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Authorization ────────────────────────────────────────────────────────────

// AccessDeniedTotal counts requests rejected by a route guard.
// Label:
//   - reason: "unauthenticated" or "role"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by route guards.",
	},
	[]string{"reason"},
)

// ── Audit trail ──────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events by what happened to them.
// Label:
//   - result: "written", "dropped" or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by result.",
	},
	[]string{"result"},
)
