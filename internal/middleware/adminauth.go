package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/rental"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type key string

const UserIDKey key = "user_id"

// Authenticator checks an email/password pair. *rental.Service implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, in rental.Credentials) (*models.User, error)
}

// RequireAdmin authenticates the HTTP Basic credentials of every request and lets
// only admin users through. Missing or wrong credentials get 401, non-admins 403.
// No session is kept: each request carries its own credentials.
func RequireAdmin(auth Authenticator, realm string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", challenge)
				writeError(w, "missing credentials", http.StatusUnauthorized)
				return
			}

			user, err := auth.Authenticate(r.Context(), rental.Credentials{Email: email, Password: password})
			if err != nil {
				if errors.Is(err, rental.ErrInvalidCredentials) || errors.Is(err, rental.ErrMalformedInput) {
					w.Header().Set("WWW-Authenticate", challenge)
					writeError(w, "Invalid credentials", http.StatusUnauthorized)
					return
				}
				slog.Error("admin auth failed",
					"request_id", chimw.GetReqID(r.Context()),
					"error", err)
				writeError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if !user.IsAdmin {
				writeError(w, "admin access required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the id of the user authenticated by RequireAdmin.
func GetUserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}
