package rental

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=120"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
	IsAdmin  bool   `json:"is_admin" form:"is_admin"`
}

// Credentials is the body of POST /login and the payload of HTTP Basic auth.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// CarInput is the body of POST /cars. PricePerDay is a pointer so that a missing
// price is told apart from a free car.
type CarInput struct {
	Make        string   `json:"make" form:"make" validate:"required,max=50"`
	Model       string   `json:"model" form:"model" validate:"required,max=50"`
	PricePerDay *float64 `json:"price_per_day" form:"price_per_day" validate:"required,gte=0"`
	Category    string   `json:"category" form:"category" validate:"required,max=50"`
}

// BookingInput is the body of POST /bookings. TotalPrice is optional; when given it
// must agree with the price computed from the car and the date range.
type BookingInput struct {
	UserID     int      `json:"user_id" form:"user_id" validate:"required,gt=0"`
	CarID      int      `json:"car_id" form:"car_id" validate:"required,gt=0"`
	StartDate  string   `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	TotalPrice *float64 `json:"total_price,omitempty" form:"total_price" validate:"omitempty,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so clients see the keys they sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput runs the struct tags of in and converts failures into a *ValidationError.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "invalid"
	}
}
