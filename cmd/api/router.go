package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/crucial707/car-rental/internal/config"
	"github.com/crucial707/car-rental/internal/handlers"
	"github.com/crucial707/car-rental/internal/middleware"
	"github.com/crucial707/car-rental/internal/rental"
	"github.com/crucial707/car-rental/internal/repo"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const authRealm = "car-rental"

func newService(db *sql.DB, cfg config.Config) *rental.Service {
	svc := rental.New(
		repo.NewUserRepo(db),
		repo.NewCarRepo(db),
		repo.NewBookingRepo(db),
		slog.Default(),
	)
	if cfg.BcryptCost != 0 {
		svc.HashCost = cfg.BcryptCost
	}
	return svc
}

func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	svc := newService(db, cfg)

	authHandler := &handlers.AuthHandler{Service: svc}
	carHandler := &handlers.CarHandler{Service: svc}
	bookingHandler := &handlers.BookingHandler{Service: svc}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

	// Probes and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			handlers.JSONError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ready"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Auth
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthRateLimiter().Middleware)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Cars
	r.Get("/cars", carHandler.ListCars)
	r.Post("/cars", carHandler.AddCar)
	r.Delete("/cars/{id}", carHandler.DeleteCar)

	// Bookings
	r.Post("/bookings", bookingHandler.CreateBooking)

	// Admin (rate limited like /register and /login)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AuthRateLimiter().Middleware)
		if !cfg.PublicAdminBookings {
			r.Use(middleware.RequireAdmin(svc, authRealm))
		}
		r.Get("/bookings", bookingHandler.ListBookings)
	})

	return r
}
