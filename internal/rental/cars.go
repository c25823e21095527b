package rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/repo"
)

// ListCars returns every car in id order. Each call reads the store again.
func (s *Service) ListCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.cars.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	if cars == nil {
		cars = []models.Car{}
	}
	return cars, nil
}

// AddCar adds an available car to the fleet.
func (s *Service) AddCar(ctx context.Context, in CarInput) (*models.Car, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	car, err := s.cars.Create(ctx, in.Make, in.Model, *in.PricePerDay, in.Category)
	if err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// DeleteCar removes a car. Bookings that reference it are kept.
func (s *Service) DeleteCar(ctx context.Context, id int) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCarNotFound
		}
		return fmt.Errorf("delete car %d: %w", id, err)
	}
	return nil
}
