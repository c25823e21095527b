package handlers

import (
	"net/http"

	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/rental"
)

// BookingHandler serves booking endpoints.
type BookingHandler struct {
	Service *rental.Service
}

// BookingResponse is returned by POST /bookings.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// CreateBooking books a car. Body: user_id, car_id, start_date, end_date and optionally total_price.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input rental.BookingInput
	if err := decodeInput(r, &input); err != nil {
		JSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.Service.CreateBooking(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, BookingResponse{Message: "Booking created successfully", Booking: b})
}

// ListBookings returns all bookings. Mounted under /admin behind middleware.RequireAdmin.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListBookings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}
