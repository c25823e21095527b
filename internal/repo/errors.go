package repo

import (
	"errors"
	"math"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a delete or update matched no row.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when the users.email unique constraint rejects an insert.
	ErrEmailTaken = errors.New("email already registered")
)

// uniqueViolation is the postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// validID reports whether id fits the SERIAL/INTEGER id columns. Larger ids
// cannot match a row, and postgres rejects them with 22003 instead.
func validID(id int) bool {
	return id > 0 && id <= math.MaxInt32
}
