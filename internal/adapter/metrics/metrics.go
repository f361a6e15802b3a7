package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mailflow_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mailflow_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DispatchTicks counts dispatcher ticks by result: ok, error or busy.
	DispatchTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mailflow_dispatch_ticks_total", Help: "Dispatcher ticks"},
		[]string{"result"},
	)
	DispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mailflow_dispatch_tick_duration_seconds",
			Help:    "Time spent in one dispatcher tick",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		},
	)
	// DispatchAutomations counts due automations by outcome: completed,
	// skipped or error.
	DispatchAutomations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mailflow_dispatch_automations_total", Help: "Due automations processed"},
		[]string{"outcome"},
	)
	EmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mailflow_emails_total", Help: "Campaign emails handed to the mail transport"},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal, HTTPRequestDuration,
		DispatchTicks, DispatchDuration, DispatchAutomations, EmailsTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
