package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	BookingsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_bookings_total",
			Help: "Total number of bookings created",
		},
	)

	// BookingRevenue sums the total_price of every booking created.
	BookingRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_booking_revenue_total",
			Help: "Sum of booking total prices",
		},
	)

	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rental_registrations_total",
			Help: "Total number of registered users",
		},
	)

	// LoginsTotal counts authentication attempts by result (success, failure).
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_logins_total",
			Help: "Total number of authentication attempts by result",
		},
		[]string{"result"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, BookingsTotal, BookingRevenue, RegistrationsTotal, LoginsTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /cars/123 -> /cars/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordBooking counts a created booking and adds its price to the revenue counter.
func RecordBooking(totalPrice float64) {
	BookingsTotal.Inc()
	if totalPrice > 0 {
		BookingRevenue.Add(totalPrice)
	}
}

func RecordRegistration() {
	RegistrationsTotal.Inc()
}

// RecordLogin counts an authentication attempt.
func RecordLogin(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}
