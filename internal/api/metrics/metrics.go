// Package metrics defines and registers all custom Prometheus metrics for the
// salon API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Call sites live in the HTTP layer; the domain services stay metric-free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// CitasCreatedTotal counts newly created appointments.
// Label:
//   - estado: initial state ("pendiente", "confirmada", …)
var CitasCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "citas_created_total",
		Help:      "Total number of appointments created, by initial state.",
	},
	[]string{"estado"},
)

// FacturasCreatedTotal counts newly created invoices.
// Label:
//   - metodo_pago: payment method ("efectivo", "nequi", …)
var FacturasCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facturas_created_total",
		Help:      "Total number of invoices created, by payment method.",
	},
	[]string{"metodo_pago"},
)

// ReportesGeneradosTotal counts daily report generations.
// Label:
//   - formato: "json", "csv", or "html"
var ReportesGeneradosTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reportes_generados_total",
		Help:      "Total number of daily reports generated, by output format.",
	},
	[]string{"formato"},
)

// CacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (rebuilt from MongoDB)
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LoginTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "forbidden", or "inactive"
var LoginTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)
