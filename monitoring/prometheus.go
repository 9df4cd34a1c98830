package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	IndexerDuration *prometheus.HistogramVec
	IndexerErrors   *prometheus.CounterVec
	IndexerRequests *prometheus.CounterVec
	IndexerRows     *prometheus.CounterVec
	SeenHits        *prometheus.CounterVec
	SeenMisses      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		IndexerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "indexer_duration_seconds",
			Help:    "Duration of indexer requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
		}, []string{"indexer"}),
		IndexerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_errors_total",
			Help: "Number of indexer errors",
		}, []string{"indexer"}),
		IndexerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_requests_total",
			Help: "Number of indexer requests",
		}, []string{"indexer"}),
		IndexerRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indexer_rows_total",
			Help: "Number of listing rows extracted",
		}, []string{"indexer"}),
		SeenHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seen_hits_total",
			Help: "Number of torrents already served before",
		}, []string{"indexer"}),
		SeenMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seen_misses_total",
			Help: "Number of torrents served for the first time",
		}, []string{"indexer"}),
	}
}

// Register adds every collector to the default registry.
func (m *Metrics) Register() {
	m.RegisterWith(prometheus.DefaultRegisterer)
}

func (m *Metrics) RegisterWith(r prometheus.Registerer) {
	r.MustRegister(m.IndexerDuration)
	r.MustRegister(m.IndexerErrors)
	r.MustRegister(m.IndexerRequests)
	r.MustRegister(m.IndexerRows)
	r.MustRegister(m.SeenHits)
	r.MustRegister(m.SeenMisses)
}
