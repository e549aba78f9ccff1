package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec

	dbQueriesTotal *prometheus.CounterVec
	dbDuration     *prometheus.HistogramVec

	dbOpenConns  *prometheus.GaugeVec
	dbIdleConns  *prometheus.GaugeVec
	dbInUseConns *prometheus.GaugeVec

	bookingsCreatedTotal *prometheus.CounterVec
	turnsTotal           *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		dbDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		dbOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Open connections in the database pool",
		}, []string{"service"}),
		dbIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Idle connections in the database pool",
		}, []string{"service"}),
		dbInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Connections currently in use",
		}, []string{"service"}),
		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_bookings_created_total",
			Help: "Calendar events created through the assistant",
		}, []string{"service"}),
		turnsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_turns_total",
			Help: "Processed conversation turns by outcome",
		}, []string{"service", "outcome"}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.dbDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики connection pool
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbOpenConns.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbIdleConns.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbInUseConns.WithLabelValues(m.serviceName).Set(float64(inUse))
}

// IncBookingCreated фиксирует успешно созданное событие календаря
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.WithLabelValues(m.serviceName).Inc()
}

// IncTurn фиксирует обработанный ход диалога с итогом (booked, confirmed, cancelled, ...)
func (m *Metrics) IncTurn(outcome string) {
	m.turnsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}
