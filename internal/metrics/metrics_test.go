package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"/cars":            "/cars",
		"/cars/12":         "/cars/{id}",
		"/cars/12/":        "/cars/{id}/",
		"/admin/bookings":  "/admin/bookings",
		"/v1/cars/7/extra": "/v1/cars/{id}/extra",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRecordBooking(t *testing.T) {
	beforeCount := testutil.ToFloat64(BookingsTotal)
	beforeRevenue := testutil.ToFloat64(BookingRevenue)

	RecordBooking(160)

	if got := testutil.ToFloat64(BookingsTotal) - beforeCount; got != 1 {
		t.Errorf("bookings delta: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(BookingRevenue) - beforeRevenue; got != 160 {
		t.Errorf("revenue delta: got %v, want 160", got)
	}
}

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginsTotal.WithLabelValues("failure"))
	RecordLogin(false)
	if got := testutil.ToFloat64(LoginsTotal.WithLabelValues("failure")) - before; got != 1 {
		t.Errorf("failure delta: got %v, want 1", got)
	}
}
