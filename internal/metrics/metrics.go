package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gearshare_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gearshare_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gearshare_bookings_created_total",
			Help: "Total number of booking requests created",
		},
	)

	BookingDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gearshare_booking_decisions_total",
			Help: "Total number of booking decisions by resulting status",
		},
		[]string{"status"},
	)

	ItemsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gearshare_items_created_total",
			Help: "Total number of items listed",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gearshare_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	PendingBookings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gearshare_pending_bookings",
			Help: "Number of bookings currently waiting for a decision",
		},
	)
)
