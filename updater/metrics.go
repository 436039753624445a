package updater

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors the updater reports to
type Metrics struct {
	cycles          *prometheus.CounterVec
	cycleDuration   prometheus.Histogram
	submissions     *prometheus.CounterVec
	lastAnswer      *prometheus.GaugeVec
	lastUpdate      *prometheus.GaugeVec
	lastSucceeded prometheus.Gauge
}

// NewMetrics creates the updater collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_feeder_cycles_total",
			Help: "Update cycles by result (ok, partial, failed)",
		}, []string{"result"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "oracle_feeder_cycle_duration_seconds",
			Help:    "Time to fetch and submit all prices of one cycle",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oracle_feeder_submissions_total",
			Help: "Feed updates by symbol and result",
		}, []string{"symbol", "result"}),
		lastAnswer: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "oracle_feeder_last_price_usd",
			Help: "Last USD price confirmed on-chain",
		}, []string{"symbol"}),
		lastUpdate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "oracle_feeder_last_update_timestamp_seconds",
			Help: "Unix time of the last confirmed update",
		}, []string{"symbol"}),
		lastSucceeded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oracle_feeder_last_cycle_succeeded",
			Help: "Number of feeds updated in the last cycle",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.cycles,
			m.cycleDuration,
			m.submissions,
			m.lastAnswer,
			m.lastUpdate,
			m.lastSucceeded,
		)
	}

	return m
}
