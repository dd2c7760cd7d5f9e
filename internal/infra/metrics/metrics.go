// Package metrics owns the service's Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sportshub"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ReservationsCreated  *prometheus.CounterVec
	BookingConflicts     *prometheus.CounterVec
	ReservationsCanceled *prometheus.CounterVec
	WebhookEvents        *prometheus.CounterVec
	SubscriptionRenewals *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

// New registers every collector on a fresh registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ReservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservations created, by kind",
			},
			[]string{"kind"},
		),
		BookingConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_conflicts_total",
				Help:      "Booking attempts rejected because the slot was taken",
			},
			[]string{"resource"},
		),
		ReservationsCanceled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_cancelled_total",
				Help:      "Reservations cancelled, by whether a pending charge was voided",
			},
			[]string{"charge_cancelled"},
		),
		WebhookEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_webhook_events_total",
				Help:      "Payment webhook events by reported status and outcome",
			},
			[]string{"status", "outcome"},
		),
		SubscriptionRenewals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscription_renewals_total",
				Help:      "Subscription renewal job results",
			},
			[]string{"outcome"},
		),
		NotificationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Notifications that could not be stored or published",
			},
			[]string{"stage"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReservationsCreated,
		m.BookingConflicts,
		m.ReservationsCanceled,
		m.WebhookEvents,
		m.SubscriptionRenewals,
		m.NotificationFailures,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ReservationCreated(kind string) {
	m.ReservationsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) BookingConflict(resource string) {
	m.BookingConflicts.WithLabelValues(resource).Inc()
}

func (m *Metrics) ReservationCancelled(chargeCancelled bool) {
	m.ReservationsCanceled.WithLabelValues(strconv.FormatBool(chargeCancelled)).Inc()
}

func (m *Metrics) WebhookProcessed(status, outcome string) {
	m.WebhookEvents.WithLabelValues(status, outcome).Inc()
}

func (m *Metrics) SubscriptionRenewal(outcome string) {
	m.SubscriptionRenewals.WithLabelValues(outcome).Inc()
}

func (m *Metrics) NotificationFailed(stage string) {
	m.NotificationFailures.WithLabelValues(stage).Inc()
}
