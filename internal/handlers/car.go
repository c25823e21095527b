package handlers

import (
	"net/http"

	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/rental"
)

type CarHandler struct {
	Service *rental.Service
}

// CarResponse is returned by POST /cars.
type CarResponse struct {
	Message string      `json:"message"`
	Car     *models.Car `json:"car"`
}

//
// ==========================
// List Cars
// ==========================
//

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.ListCars(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

//
// ==========================
// Add Car
// ==========================
//

func (h *CarHandler) AddCar(w http.ResponseWriter, r *http.Request) {
	var input rental.CarInput
	if err := decodeInput(r, &input); err != nil {
		JSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	car, err := h.Service.AddCar(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CarResponse{Message: "Car added successfully", Car: car})
}

//
// ==========================
// Delete Car
// ==========================
//

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		JSONError(w, "invalid car id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteCar(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Car deleted"})
}
