package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/car-rental/internal/models"
)

// BookingRepo persists bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts b and fills in its ID and CreatedAt.
func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO bookings (user_id, car_id, start_date, end_date, total_price)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		b.UserID, b.CarID, b.StartDate, b.EndDate, b.TotalPrice,
	).Scan(&b.ID, &b.CreatedAt)
}

// List returns every booking in insertion order.
func (r *BookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, car_id, start_date, end_date, total_price, created_at FROM bookings ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.CarID, &b.StartDate, &b.EndDate, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
