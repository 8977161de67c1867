package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitmate_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitmate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_bookings_total",
			Help: "Total number of class bookings",
		},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_booking_conflicts_total",
			Help: "Total number of duplicate booking attempts",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	OccupancyPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitmate_occupancy_percent",
			Help: "Last computed gym occupancy percentage",
		},
	)

	OccupancyFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_occupancy_fallbacks_total",
			Help: "Occupancy estimates served from the time-of-day fallback",
		},
	)

	PlansGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitmate_plans_generated_total",
			Help: "Total number of AI plans generated",
		},
		[]string{"kind"},
	)

	FeedbackSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_feedback_submitted_total",
			Help: "Total number of feedback submissions",
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitmate_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking() {
	BookingsTotal.Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordOccupancy(percent int, fallback bool) {
	OccupancyPercent.Set(float64(percent))
	if fallback {
		OccupancyFallbacksTotal.Inc()
	}
}

func RecordPlanGenerated(kind string) {
	PlansGeneratedTotal.WithLabelValues(kind).Inc()
}

func RecordFeedbackSubmitted() {
	FeedbackSubmittedTotal.Inc()
}

func RecordRateLimited() {
	RateLimitedTotal.Inc()
}
