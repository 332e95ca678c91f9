package obs

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Backend call metrics
var (
	registerOnce sync.Once

	apiInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_client_api_in_flight_requests",
		Help: "Backend requests currently in flight.",
	})

	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_client_api_requests_total",
			Help: "Total number of backend requests by outcome.",
		},
		[]string{"method", "route", "outcome"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auction_client_api_request_duration_seconds",
			Help:    "Backend request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "outcome"},
	)

	stalePolls = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_client_stale_notification_polls_total",
		Help: "Notification poll responses discarded because a newer one was applied.",
	})
)

// Outcome labels
const (
	OutcomeOK        = "ok"
	OutcomeAPIError  = "api_error"
	OutcomeNetwork   = "network_error"
	OutcomeMalformed = "malformed"
)

// Init registers the metrics in the default registry. Safe to call twice.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(apiInFlight, apiRequestsTotal, apiRequestDuration, stalePolls)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartAPICall marks a request in flight and returns the function that
// records its outcome.
func StartAPICall(method, route string) func(outcome string) {
	apiInFlight.Inc()
	start := time.Now()
	return func(outcome string) {
		apiInFlight.Dec()
		apiRequestDuration.WithLabelValues(method, route, outcome).Observe(time.Since(start).Seconds())
		apiRequestsTotal.WithLabelValues(method, route, outcome).Inc()
	}
}

// StalePollDiscarded counts a dropped notification poll result.
func StalePollDiscarded() {
	stalePolls.Inc()
}
