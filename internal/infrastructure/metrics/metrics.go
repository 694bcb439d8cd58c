// Package metrics define los colectores Prometheus de la API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "g_inventory"

// Metrics colectores registrados en un Registerer propio (no el global, para tests).
type Metrics struct {
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	AlertsEnqueued *prometheus.CounterVec
	AlertsDropped  prometheus.Counter
	AlertsSent     *prometheus.CounterVec
	AlertsFailed   *prometheus.CounterVec
}

// New registra los colectores en reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y estado.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AlertsEnqueued: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_alerts_enqueued_total",
			Help:      "Avisos de inventario encolados por tipo.",
		}, []string{"kind"}),
		AlertsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_alerts_dropped_total",
			Help:      "Avisos descartados por cola llena o cerrada.",
		}),
		AlertsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_alerts_sent_total",
			Help:      "Avisos entregados por canal.",
		}, []string{"channel"}),
		AlertsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_alerts_failed_total",
			Help:      "Avisos fallidos por canal.",
		}, []string{"channel"}),
	}
}

// QueueDepth registra un gauge que lee la ocupación de la cola en cada scrape.
func QueueDepth(reg prometheus.Registerer, depth func() float64) {
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_alert_queue_depth",
		Help:      "Avisos pendientes en la cola.",
	}, depth)
}
