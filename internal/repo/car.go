package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/car-rental/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type CarRepo struct {
	DB *sql.DB
}

func NewCarRepo(db *sql.DB) *CarRepo {
	return &CarRepo{DB: db}
}

// ========================
// CREATE CAR
// ========================

// Create inserts an available car.
func (r *CarRepo) Create(ctx context.Context, carMake, model string, pricePerDay float64, category string) (*models.Car, error) {
	car := &models.Car{}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO cars (make, model, price_per_day, category, available)
		 VALUES ($1, $2, $3, $4, TRUE)
		 RETURNING id, make, model, price_per_day, category, available`,
		carMake, model, pricePerDay, category,
	).Scan(
		&car.ID,
		&car.Make,
		&car.Model,
		&car.PricePerDay,
		&car.Category,
		&car.Available,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

// ========================
// GET CAR BY ID
// ========================

func (r *CarRepo) GetByID(ctx context.Context, id int) (*models.Car, error) {
	if !validID(id) {
		return nil, sql.ErrNoRows
	}

	car := &models.Car{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, make, model, price_per_day, category, available
		 FROM cars
		 WHERE id = $1`,
		id,
	).Scan(
		&car.ID,
		&car.Make,
		&car.Model,
		&car.PricePerDay,
		&car.Category,
		&car.Available,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}

// ========================
// DELETE CAR BY ID
// ========================

// Delete removes a car. Bookings that reference it are left untouched.
func (r *CarRepo) Delete(ctx context.Context, id int) error {
	if !validID(id) {
		return ErrNotFound
	}

	result, err := r.DB.ExecContext(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ========================
// LIST ALL CARS
// ========================

func (r *CarRepo) List(ctx context.Context) ([]models.Car, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, make, model, price_per_day, category, available FROM cars ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var c models.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.PricePerDay, &c.Category, &c.Available); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// ========================
// COUNT CARS
// ========================

func (r *CarRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM cars").Scan(&n)
	return n, err
}
