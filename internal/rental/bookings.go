package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/crucial707/car-rental/internal/metrics"
	"github.com/crucial707/car-rental/internal/models"
)

// DateLayout is the wire and storage format of booking dates.
const DateLayout = "2006-01-02"

// priceTolerance absorbs float rounding when comparing a client total with ours.
const priceTolerance = 0.005

const secondsPerDay = 24 * 60 * 60

// BilledDays is the number of whole days between start and end, never less than one.
// Unix seconds are used because time.Duration saturates after about 292 years.
func BilledDays(start, end time.Time) int {
	days := int((end.Unix() - start.Unix()) / secondsPerDay)
	if days < 1 {
		return 1
	}
	return days
}

// Quote prices a rental of BilledDays(start, end) days, rounded to cents.
func Quote(pricePerDay float64, start, end time.Time) float64 {
	return math.Round(float64(BilledDays(start, end))*pricePerDay*100) / 100
}

// ParseRange parses both dates and checks that end is not before start.
func ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", ErrInvalidDateRange, endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %s is before start_date %s", ErrInvalidDateRange, endDate, startDate)
	}
	return start, end, nil
}

// CreateBooking books a car for a user. The user and car must exist, the date
// range must be ordered, and the total is computed from the car's daily price.
// A caller-supplied total is only accepted when it matches.
func (s *Service) CreateBooking(ctx context.Context, in BookingInput) (*models.Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	start, end, err := ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", ErrReferenceNotFound, in.UserID)
		}
		return nil, fmt.Errorf("get user %d: %w", in.UserID, err)
	}

	car, err := s.cars.GetByID(ctx, in.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: car %d", ErrReferenceNotFound, in.CarID)
		}
		return nil, fmt.Errorf("get car %d: %w", in.CarID, err)
	}

	total := Quote(car.PricePerDay, start, end)
	if in.TotalPrice != nil && math.Abs(*in.TotalPrice-total) > priceTolerance {
		return nil, fmt.Errorf("%w: got %.2f, want %.2f", ErrPriceMismatch, *in.TotalPrice, total)
	}

	b := &models.Booking{
		UserID:     in.UserID,
		CarID:      in.CarID,
		StartDate:  start.Format(DateLayout),
		EndDate:    end.Format(DateLayout),
		TotalPrice: total,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Email delivery is not implemented; the notice is the only trace.
	s.log.Info("booking confirmed, confirmation email sent (mock)",
		"booking_id", b.ID,
		"user_id", b.UserID,
		"car_id", b.CarID,
		"total_price", b.TotalPrice)
	metrics.RecordBooking(b.TotalPrice)

	return b, nil
}

// ListBookings returns every booking in id order.
func (s *Service) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
