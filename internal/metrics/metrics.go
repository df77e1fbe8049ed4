package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome label values.
const (
	OutcomeResolved = "resolved"
	OutcomeFailed   = "failed"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "galaxycheck",
		Name:      "token_lookups_total",
		Help:      "Total token lookups by outcome",
	}, []string{"outcome"})

	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "galaxycheck",
		Name:      "token_lookup_duration_seconds",
		Help:      "Duration of contract calls for token lookups",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
	})

	lookupsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "galaxycheck",
		Name:      "token_lookups_in_flight",
		Help:      "Token lookups waiting for the call endpoint",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "galaxycheck",
		Name:      "sessions_active",
		Help:      "Browser sessions holding a lookup list",
	})

	upstreamUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "galaxycheck",
		Name:      "upstream_up",
		Help:      "1 if the last probe of the call endpoint succeeded",
	})
)

// Recorder receives lookup lifecycle events.
type Recorder interface {
	LookupStarted()
	LookupFinished(outcome string, d time.Duration)
}

// Prometheus records lookup events into the default registry.
type Prometheus struct{}

// LookupStarted increments the in-flight gauge.
func (Prometheus) LookupStarted() {
	lookupsInFlight.Inc()
}

// LookupFinished records the outcome and duration of a lookup.
func (Prometheus) LookupFinished(outcome string, d time.Duration) {
	lookupsInFlight.Dec()
	lookupsTotal.WithLabelValues(outcome).Inc()
	lookupDuration.Observe(d.Seconds())
}

// SetActiveSessions reports the number of live session lists.
func SetActiveSessions(n int) {
	sessionsActive.Set(float64(n))
}

// SetUpstreamUp reports the result of the latest upstream probe.
func SetUpstreamUp(up bool) {
	if up {
		upstreamUp.Set(1)
		return
	}
	upstreamUp.Set(0)
}

// Nop discards lookup events.
type Nop struct{}

func (Nop) LookupStarted()                       {}
func (Nop) LookupFinished(string, time.Duration) {}
