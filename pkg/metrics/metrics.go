package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор prometheus метрик сервиса
// Все методы безопасны для nil получателя: при выключенных метриках передаётся nil
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	SlotsReturned         *prometheus.CounterVec
	SlotsFiltered         *prometheus.CounterVec
	UnavailabilityWritten *prometheus.CounterVec
	SlotsCacheRequests    *prometheus.CounterVec

	serviceName string
}

// New создает коллектор и регистрирует его в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает коллектор и регистрирует его в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query latency in seconds",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBOpenConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_open_connections",
				Help: "Number of established connections",
			},
			[]string{"service"},
		),
		DBInUse: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_in_use_connections",
				Help: "Number of connections currently in use",
			},
			[]string{"service"},
		),
		DBIdle: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_idle_connections",
				Help: "Number of idle connections",
			},
			[]string{"service"},
		),
		DBWaitCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_wait_count",
				Help: "Total number of connections waited for",
			},
			[]string{"service"},
		),

		SlotsReturned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_slots_returned_total",
				Help: "Slots returned as available",
			},
			[]string{"service"},
		),
		SlotsFiltered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_slots_filtered_total",
				Help: "Slots excluded because of an overlapping unavailability window",
			},
			[]string{"service"},
		),
		UnavailabilityWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unavailability_written_total",
				Help: "Unavailability rows written, by kind",
			},
			[]string{"service", "kind"},
		),
		SlotsCacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_cache_requests_total",
				Help: "Available slots cache lookups, by result",
			},
			[]string{"service", "result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.SlotsReturned,
		m.SlotsFiltered,
		m.UnavailabilityWritten,
		m.SlotsCacheRequests,
	)

	return m
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBIdle.WithLabelValues(m.serviceName).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
}

// ObserveSlotsFiltered учитывает результат фильтрации слотов
func (m *Metrics) ObserveSlotsFiltered(total, available int) {
	if m == nil {
		return
	}
	m.SlotsReturned.WithLabelValues(m.serviceName).Add(float64(available))
	m.SlotsFiltered.WithLabelValues(m.serviceName).Add(float64(total - available))
}

// ObserveUnavailabilityWritten учитывает записанные окна недоступности
func (m *Metrics) ObserveUnavailabilityWritten(kind string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.UnavailabilityWritten.WithLabelValues(m.serviceName, kind).Add(float64(count))
}

// ObserveCacheLookup учитывает обращение к кэшу слотов (hit/miss/error)
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.SlotsCacheRequests.WithLabelValues(m.serviceName, result).Inc()
}
