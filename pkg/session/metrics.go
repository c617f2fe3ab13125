package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lifecycle events counted by Metrics.
const (
	EventCreated   = "created"    // cookie issued to a client without one
	EventLoaded    = "loaded"     // stored data loaded
	EventFresh     = "fresh"      // valid cookie, no stored data yet
	EventExpired   = "expired"    // expired cookie replaced
	EventCorrupt   = "corrupt"    // unreadable stored data discarded
	EventBadCookie = "bad_cookie" // request rejected
	EventSaved     = "saved"
	EventDestroyed = "destroyed"
)

// Metrics exposes session lifecycle counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	events       *prometheus.CounterVec
	saveDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filesession_events_total",
				Help: "Total number of session lifecycle events",
			},
			[]string{"event"},
		),
		saveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "filesession_save_duration_seconds",
				Help:    "Session save latency in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
	}
}

func (m *Metrics) event(name string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(name).Inc()
}

func (m *Metrics) observeSave(d time.Duration) {
	if m == nil {
		return
	}
	m.saveDuration.Observe(d.Seconds())
}
