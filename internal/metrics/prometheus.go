package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Entity mutation metrics
	EntityWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_writes_total",
			Help: "Total number of entity mutations by entity and operation",
		},
		[]string{"entity", "operation"}, // operation: create, update, delete
	)

	CascadeDeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_deletes_total",
			Help: "Total number of dependent rows removed by cascade deletes",
		},
		[]string{"entity"},
	)

	// Database metrics
	DatabaseConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
		[]string{"status"}, // status: active, idle, waiting
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// IncrementEntityWrites increments the mutation counter for an entity.
func IncrementEntityWrites(entity, operation string) {
	EntityWritesTotal.WithLabelValues(entity, operation).Inc()
}

// AddCascadeDeletes records dependent rows removed by a cascade.
func AddCascadeDeletes(entity string, count float64) {
	CascadeDeletesTotal.WithLabelValues(entity).Add(count)
}

// UpdateDatabaseConnections updates pool connection gauges.
func UpdateDatabaseConnections(status string, count float64) {
	DatabaseConnections.WithLabelValues(status).Set(count)
}

// IncrementAPIRequests increments API request counter
func IncrementAPIRequests(method, endpoint, statusCode string) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
}

// RecordAPIRequestDuration records API request duration
func RecordAPIRequestDuration(method, endpoint string, duration float64) {
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}
