package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MonitoredRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_monitored_requests_total",
			Help: "Total number of monitored visitor requests",
		},
		[]string{"result"},
	)

	StorageFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_storage_fallbacks_total",
			Help: "Remote store operations served by the in-memory fallback",
		},
		[]string{"operation"},
	)

	GeolocationLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_geolocation_lookups_total",
			Help: "Geolocation lookups by outcome",
		},
		[]string{"result"},
	)

	RetentionDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_retention_deleted_total",
			Help: "Request records removed by the retention policy",
		},
	)

	StorageOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_storage_op_duration_seconds",
			Help:    "Duration of storage backend operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)
)

func init() {
	prometheus.MustRegister(MonitoredRequests)
	prometheus.MustRegister(StorageFallbacks)
	prometheus.MustRegister(GeolocationLookups)
	prometheus.MustRegister(RetentionDeleted)
	prometheus.MustRegister(StorageOpDuration)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
