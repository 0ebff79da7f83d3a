package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
// HTTP metrics are recorded by the metrics middleware, DB metrics by the
// dbmetrics wrapper around *sql.DB.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections *prometheus.GaugeVec
	dbIdleConnections *prometheus.GaugeVec
	dbInUseConnections *prometheus.GaugeVec
}

// New creates and registers the service collectors on the default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries executed",
		}, []string{"service", "operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbOpenConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		dbIdleConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		dbInUseConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records one processed HTTP request
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one executed database query
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes the current connection pool state
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbIdleConnections.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbInUseConnections.WithLabelValues(m.serviceName).Set(float64(inUse))
}
