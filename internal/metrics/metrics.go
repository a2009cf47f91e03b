package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ConversionsTotal *prometheus.CounterVec
	InitErrors       prometheus.Counter
	ConvertSeconds   *prometheus.HistogramVec
	ActiveWorkers    prometheus.Gauge
	TransformMode    prometheus.Gauge
	PointsProcessed  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ConversionsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sweref_conversions_total",
			Help: "Total number of coordinate conversions.",
		}, []string{"status"}),
		InitErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "sweref_engine_init_errors_total",
			Help: "Total number of failed transformation engine initializations.",
		}),
		ConvertSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sweref_conversion_duration_seconds",
			Help:    "Duration of coordinate conversions.",
			Buckets: prometheus.DefBuckets,
		}, []string{"engine"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "sweref_active_workers",
			Help: "Current number of active workers projecting stored points.",
		}),
		TransformMode: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "sweref_transform_mode",
			Help: "Active transformation path: -1 uninitialized, 0 static, 1 time-dependent.",
		}),
		PointsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sweref_points_processed_total",
			Help: "Total number of stored points processed by the backfill service.",
		}, []string{"status"}),
	}
}
