package handlers

import (
	"net/http"

	"github.com/crucial707/car-rental/internal/rental"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Service *rental.Service
}

// IdentityResponse is returned by register and login.
type IdentityResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// ==========================
// Register (password stored as bcrypt hash)
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input rental.RegisterInput
	if err := decodeInput(r, &input); err != nil {
		JSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Register(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, IdentityResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	})
}

// ==========================
// Login (verifies credentials; no session or token is issued)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input rental.Credentials
	if err := decodeInput(r, &input); err != nil {
		JSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Service.Authenticate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, IdentityResponse{
		Message: "Login successful",
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	})
}
