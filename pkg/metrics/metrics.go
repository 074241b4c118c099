// Package metrics holds the Prometheus collectors of the application. They
// register with the default registry on import and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "renovation"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CustomerMutationsTotal counts committed customer writes.
// Label:
//   - operation: "create", "update_status", "update_fields", "delete"
var CustomerMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_mutations_total",
		Help:      "Total number of committed customer mutations, by operation.",
	},
	[]string{"operation"},
)

// ExportsTotal counts generated report files.
// Label:
//   - format: "xlsx" or "pdf"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of customer exports generated, by format.",
	},
	[]string{"format"},
)

// AccessDeniedTotal counts requests rejected by the access gate.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by the access policy.",
	},
	[]string{"reason"},
)

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/edit_customer/{id}")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
