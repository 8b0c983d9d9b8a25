// Package monitoring provides Prometheus metrics for easylog dispatch.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsLogged tracks the total number of log events dispatched per
	// logger and severity.
	EventsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "easylog_events_total",
		Help: "Total number of log events dispatched",
	}, []string{"logger", "level"})

	// HandlerWrites tracks writes per handler by outcome.
	HandlerWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "easylog_handler_writes_total",
		Help: "Total number of handler write attempts",
	}, []string{"handler", "kind", "status"})

	// HandlersRegistered tracks the number of live handlers per kind.
	HandlersRegistered = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "easylog_handlers_registered",
		Help: "Number of registered handlers",
	}, []string{"kind"})
)
