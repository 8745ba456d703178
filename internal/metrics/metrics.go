// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts handled requests by route, method and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "budgetbook",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route, method and status.",
}, []string{"route", "method", "status"})

// HTTPDuration observes request latency by route and method.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "budgetbook",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// ReportsComputed counts report projections by report name.
var ReportsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "budgetbook",
	Subsystem: "reports",
	Name:      "computed_total",
	Help:      "Total report projections computed.",
}, []string{"report"})

// ReportDuration observes how long each projection takes, including the
// store snapshot.
var ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "budgetbook",
	Subsystem: "reports",
	Name:      "duration_seconds",
	Help:      "Report computation latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"report"})

// PlanCopies counts plan copy attempts by outcome code ("ok" on success).
var PlanCopies = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "budgetbook",
	Subsystem: "plans",
	Name:      "copies_total",
	Help:      "Total budget plan copy attempts by outcome.",
}, []string{"outcome"})
