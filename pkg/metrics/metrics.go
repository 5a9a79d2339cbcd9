package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records API and domain counters for the back office.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	ordersPlaced    *prometheus.CounterVec
	shiftsRecorded  prometheus.Counter
	wagesAccrued    prometheus.Counter
	outboxPublished *prometheus.CounterVec
	outboxFailures  *prometheus.CounterVec
}

// New registers the back-office metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed, labelled by store.",
	}, []string{"store"})
	shiftsRecorded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shifts_recorded_total",
		Help: "Work shifts recorded.",
	})
	wagesAccrued := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wages_accrued_total",
		Help: "Wage rows created alongside shifts.",
	})
	outboxPublished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_published_total",
		Help: "Outbox events published, labelled by event type.",
	}, []string{"event_type"})
	outboxFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_publish_failures_total",
		Help: "Outbox publish attempts that failed, labelled by event type.",
	}, []string{"event_type"})
	reg.MustRegister(requestDuration, ordersPlaced, shiftsRecorded, wagesAccrued, outboxPublished, outboxFailures)
	return &Metrics{
		requestDuration: requestDuration,
		ordersPlaced:    ordersPlaced,
		shiftsRecorded:  shiftsRecorded,
		wagesAccrued:    wagesAccrued,
		outboxPublished: outboxPublished,
		outboxFailures:  outboxFailures,
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, normalizeLabel(route), status).Observe(duration.Seconds())
}

// IncOrdersPlaced increments the order counter for a store.
func (m *Metrics) IncOrdersPlaced(store string) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(normalizeLabel(store)).Inc()
}

// IncShiftsRecorded increments the shift counter.
func (m *Metrics) IncShiftsRecorded() {
	if m == nil || m.shiftsRecorded == nil {
		return
	}
	m.shiftsRecorded.Inc()
}

// IncWagesAccrued increments the wage counter.
func (m *Metrics) IncWagesAccrued() {
	if m == nil || m.wagesAccrued == nil {
		return
	}
	m.wagesAccrued.Inc()
}

// IncOutboxPublished increments the publish counter for an event type.
func (m *Metrics) IncOutboxPublished(eventType string) {
	if m == nil || m.outboxPublished == nil {
		return
	}
	m.outboxPublished.WithLabelValues(normalizeLabel(eventType)).Inc()
}

// IncOutboxFailures increments the failure counter for an event type.
func (m *Metrics) IncOutboxFailures(eventType string) {
	if m == nil || m.outboxFailures == nil {
		return
	}
	m.outboxFailures.WithLabelValues(normalizeLabel(eventType)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
