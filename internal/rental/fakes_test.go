package rental

import (
	"context"
	"database/sql"
	"sync"

	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/repo"
)

// memStore is an in-memory stand-in for the three SQL repositories. It returns
// the same sentinel errors the repo package does.
type memStore struct {
	mu       sync.Mutex
	users    []models.User
	cars     []models.Car
	bookings []models.Booking
	nextID   int
	err      error
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

type memUsers struct{ *memStore }
type memCars struct{ *memStore }
type memBookings struct{ *memStore }

func (m memUsers) Create(_ context.Context, email, hash string, isAdmin bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return nil, repo.ErrEmailTaken
		}
	}
	u := models.User{ID: m.id(), Email: email, PasswordHash: hash, IsAdmin: isAdmin}
	m.users = append(m.users, u)
	return &u, nil
}

func (m memUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m memCars) Create(_ context.Context, carMake, model string, price float64, category string) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c := models.Car{ID: m.id(), Make: carMake, Model: model, PricePerDay: price, Category: category, Available: true}
	m.cars = append(m.cars, c)
	return &c, nil
}

func (m memCars) GetByID(_ context.Context, id int) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cars {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m memCars) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.cars {
		if c.ID == id {
			m.cars = append(m.cars[:i], m.cars[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m memCars) List(context.Context) ([]models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Car(nil), m.cars...), nil
}

func (m memCars) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cars), nil
}

func (m memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	b.ID = m.id()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m memBookings) List(context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Booking(nil), m.bookings...), nil
}
