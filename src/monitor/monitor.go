package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// -----------------------------------------------------------------------------

// Monitor collects Prometheus metrics on a private registry.
type Monitor struct {
	registry *prometheus.Registry

	fetchRequests    *prometheus.CounterVec
	pipelineDuration prometheus.Histogram
	watchlistErrors  prometheus.Counter
	wsClients        prometheus.Gauge
}

// -----------------------------------------------------------------------------

func New() *Monitor {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Monitor{
		registry: reg,

		fetchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "fetch_requests_total",
			Help:      "Provider fetches by symbol and outcome (ok, empty, error).",
		}, []string{"symbol", "outcome"}),

		pipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "pipeline_duration_seconds",
			Help:      "Wall time of one full fetch-to-payload pipeline run.",
			Buckets:   prometheus.DefBuckets,
		}),

		watchlistErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "watchlist_errors_total",
			Help:      "Per-symbol watchlist refresh failures.",
		}),

		wsClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "ws_clients",
			Help:      "Currently connected WebSocket clients.",
		}),
	}
}

// -----------------------------------------------------------------------------

func (m *Monitor) RecordFetch(symbol, outcome string) {
	m.fetchRequests.WithLabelValues(symbol, outcome).Inc()
}

func (m *Monitor) ObservePipeline(seconds float64) {
	m.pipelineDuration.Observe(seconds)
}

func (m *Monitor) RecordWatchlistError() {
	m.watchlistErrors.Inc()
}

func (m *Monitor) ClientConnected() {
	m.wsClients.Inc()
}

func (m *Monitor) ClientDisconnected() {
	m.wsClients.Dec()
}

// -----------------------------------------------------------------------------

// Handler exposes the registry for the /metrics route.
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
