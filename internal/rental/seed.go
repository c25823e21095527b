package rental

import (
	"context"
	"fmt"

	"github.com/crucial707/car-rental/internal/models"
)

// DemoFleet is inserted by SeedCars into an empty inventory.
var DemoFleet = []models.Car{
	{Make: "Toyota", Model: "Corolla", PricePerDay: 40, Category: "Sedan"},
	{Make: "Ford", Model: "Mustang", PricePerDay: 75, Category: "Sports"},
	{Make: "BMW", Model: "X5", PricePerDay: 90, Category: "SUV"},
	{Make: "Tesla", Model: "Model S", PricePerDay: 120, Category: "Electric"},
	{Make: "Chevrolet", Model: "Camaro", PricePerDay: 70, Category: "Sports"},
}

// SeedCars inserts DemoFleet when no car exists yet and returns how many cars it added.
func (s *Service) SeedCars(ctx context.Context) (int, error) {
	n, err := s.cars.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	for i, c := range DemoFleet {
		if _, err := s.cars.Create(ctx, c.Make, c.Model, c.PricePerDay, c.Category); err != nil {
			return i, fmt.Errorf("seed %s %s: %w", c.Make, c.Model, err)
		}
	}
	s.log.Info("seeded demo fleet", "count", len(DemoFleet))
	return len(DemoFleet), nil
}
