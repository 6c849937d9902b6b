package serve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcome labels.
const (
	statusOK       = "ok"
	statusNotFound = "not_found"
	statusError    = "error"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    prometheus.Histogram
	reloadClients  prometheus.Gauge
	reloadsTotal   prometheus.Counter
}

// newMetrics registers the server metrics with reg.
func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of page renders by page and status",
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time to load and render a page in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered pages in bytes",
			Buckets:   []float64{256, 1024, 4096, 16384, 65536, 262144}, // 256B to 256KB
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reload_clients",
			Help:      "Number of connected live reload clients",
		}),

		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Total number of reload notifications broadcast",
		}),
	}
}
