package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal *prometheus.CounterVec
	bookingConflicts     prometheus.Counter
	lockContention       prometheus.Counter
}

// New регистрирует метрики в реестре по умолчанию
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings committed, by initial status",
		}, []string{"service", "status"}),

		bookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Total number of commit attempts rejected due to an overlapping booking",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),

		lockContention: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_lock_contention_total",
			Help:        "Total number of commit attempts that failed to acquire the per-car lock",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncBookingCreated фиксирует успешно созданное бронирование
func (m *Metrics) IncBookingCreated(status string) {
	m.bookingsCreatedTotal.WithLabelValues(m.serviceName, status).Inc()
}

// IncBookingConflict фиксирует отказ из-за пересечения интервалов
func (m *Metrics) IncBookingConflict() {
	m.bookingConflicts.Inc()
}

// IncLockContention фиксирует неудачную попытку взять per-car замок
func (m *Metrics) IncLockContention() {
	m.lockContention.Inc()
}
