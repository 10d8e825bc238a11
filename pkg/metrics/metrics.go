package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge
	DBWaitDuration     prometheus.Gauge

	// Правила бронирования
	RuleCacheRequests *prometheus.CounterVec
	BookingVerdicts   *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		DBWaitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: labels,
		}),

		RuleCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "season_rule_cache_requests_total",
			Help:        "Season rule cache lookups by result (hit, miss, fallback)",
			ConstLabels: labels,
		}, []string{"result"}),
		BookingVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_verdicts_total",
			Help:        "Booking validation verdicts by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDuration,
		m.RuleCacheRequests,
		m.BookingVerdicts,
	)

	return m
}

// RuleCacheHit снимок правил взят из кэша.
// Методы доменных счётчиков безопасны для nil, когда метрики выключены.
func (m *Metrics) RuleCacheHit() {
	if m == nil {
		return
	}
	m.RuleCacheRequests.WithLabelValues("hit").Inc()
}

// RuleCacheMiss правила перечитаны из хранилища
func (m *Metrics) RuleCacheMiss() {
	if m == nil {
		return
	}
	m.RuleCacheRequests.WithLabelValues("miss").Inc()
}

// RuleCacheFallback хранилище недоступно или пусто, использованы запасные правила
func (m *Metrics) RuleCacheFallback() {
	if m == nil {
		return
	}
	m.RuleCacheRequests.WithLabelValues("fallback").Inc()
}

// BookingVerdict учитывает результат проверки бронирования
func (m *Metrics) BookingVerdict(valid bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if valid {
		result = "accepted"
	}
	m.BookingVerdicts.WithLabelValues(result).Inc()
}
