package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crucial707/car-rental/internal/metrics"
	"github.com/crucial707/car-rental/internal/models"
	"github.com/crucial707/car-rental/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user with a bcrypt hash of the password. A second
// registration with the same email fails with ErrDuplicateEmail; the unique
// index on users.email makes the check atomic.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.HashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, &ValidationError{Fields: map[string]string{"password": "must be at most 72 bytes"}}
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, in.Email, string(hash), in.IsAdmin)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RecordRegistration()
	return user, nil
}

// Authenticate returns the user whose email and password both match.
// Any mismatch is reported as ErrInvalidCredentials. No session is created.
func (s *Service) Authenticate(ctx context.Context, in Credentials) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(s.unknownUserHash(), []byte(in.Password))
			metrics.RecordLogin(false)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		metrics.RecordLogin(false)
		return nil, ErrInvalidCredentials
	}

	metrics.RecordLogin(true)
	return user, nil
}
