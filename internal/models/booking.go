package models

import "time"

// Booking reserves a car for a user between two calendar dates (YYYY-MM-DD).
// UserID and CarID are plain references; a booking outlives a deleted car.
type Booking struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	CarID      int       `json:"car_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
