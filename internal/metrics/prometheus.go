// Package metrics provides Prometheus metrics for Bluebird Flight runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all gameplay metrics on a private registry.
type Manager struct {
	namespace    string
	subsystem    string
	scoreBuckets []float64
	registry     *prometheus.Registry

	runsStarted  *prometheus.CounterVec
	runsActive   prometheus.Gauge
	passThroughs prometheus.Counter
	flaps        prometheus.Counter
	pauses       prometheus.Counter
	gameOvers    *prometheus.CounterVec
	abandoned    prometheus.Counter
	tierChanges  *prometheus.CounterVec
	finalScores  prometheus.Histogram
	storeErrors  *prometheus.CounterVec
}

// NewManager creates a metrics manager. Without WithRegistry it uses a fresh
// registry, so several managers can coexist in tests.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:    "bluebird",
		subsystem:    "game",
		scoreBuckets: []float64{0, 1, 5, 10, 20, 30, 45, 60, 90, 120},
		registry:     prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.runsStarted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_started_total",
		Help:      "Runs started, by starting tier",
	}, []string{"tier"})

	m.runsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_active",
		Help:      "Runs currently in progress",
	})

	m.passThroughs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pass_throughs_total",
		Help:      "Gates passed by players",
	})

	m.flaps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "flaps_total",
		Help:      "Accepted flap inputs",
	})

	m.pauses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pauses_total",
		Help:      "Times a run was paused",
	})

	m.gameOvers = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "game_overs_total",
		Help:      "Finished runs, by cause",
	}, []string{"cause"})

	m.abandoned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_abandoned_total",
		Help:      "Runs left before game over by a restart, quit or disconnect",
	})

	m.tierChanges = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tier_changes_total",
		Help:      "Difficulty upgrades, by new tier",
	}, []string{"tier"})

	m.finalScores = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_score",
		Help:      "Distribution of final run scores",
		Buckets:   m.scoreBuckets,
	})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Persistence failures, by operation",
	}, []string{"op"})
}

// RunStarted records a new run.
func (m *Manager) RunStarted(tier string) {
	m.runsStarted.WithLabelValues(tier).Inc()
	m.runsActive.Inc()
}

// PassThrough records a passed gate.
func (m *Manager) PassThrough() {
	m.passThroughs.Inc()
}

// Flap records an accepted flap.
func (m *Manager) Flap() {
	m.flaps.Inc()
}

// Paused records a pause.
func (m *Manager) Paused() {
	m.pauses.Inc()
}

// TierChanged records a difficulty upgrade.
func (m *Manager) TierChanged(tier string) {
	m.tierChanges.WithLabelValues(tier).Inc()
}

// GameOver records the end of a run.
func (m *Manager) GameOver(cause string, score int) {
	m.gameOvers.WithLabelValues(cause).Inc()
	m.finalScores.Observe(float64(score))
	m.runsActive.Dec()
}

// RunAbandoned records a run that stopped without a game over.
func (m *Manager) RunAbandoned() {
	m.abandoned.Inc()
	m.runsActive.Dec()
}

// StoreError records a failed persistence operation.
func (m *Manager) StoreError(op string) {
	m.storeErrors.WithLabelValues(op).Inc()
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the metrics.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
