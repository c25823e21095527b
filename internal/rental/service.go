// Package rental holds the car-rental domain operations: user registration and
// authentication, the car inventory and bookings. Persistence is reached only
// through the store interfaces handed to New.
package rental

import (
	"context"
	"log/slog"
	"sync"

	"github.com/crucial707/car-rental/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence the service needs for users.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, isAdmin bool) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CarStore is the persistence the service needs for cars.
type CarStore interface {
	Create(ctx context.Context, carMake, model string, pricePerDay float64, category string) (*models.Car, error)
	GetByID(ctx context.Context, id int) (*models.Car, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]models.Car, error)
	Count(ctx context.Context) (int, error)
}

// BookingStore is the persistence the service needs for bookings.
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
}

type Service struct {
	users    UserStore
	cars     CarStore
	bookings BookingStore
	log      *slog.Logger

	// HashCost is the bcrypt cost for new password hashes.
	HashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

// New returns a Service over the given stores. A nil logger uses slog.Default().
func New(users UserStore, cars CarStore, bookings BookingStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:    users,
		cars:     cars,
		bookings: bookings,
		log:      logger,
		HashCost: bcrypt.DefaultCost,
	}
}

// unknownUserHash is compared against when an email has no account, so a
// failed login costs one bcrypt comparison whether or not the user exists.
func (s *Service) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("unknown-user"), s.HashCost)
		if err != nil {
			h, _ = bcrypt.GenerateFromPassword([]byte("unknown-user"), bcrypt.DefaultCost)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
