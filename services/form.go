package services

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"hotel-console/validation"
)

// Form is a submitted form: field name to raw value, as bound from the
// request body.
type Form map[string]any

func (f Form) String(key string) string {
	return validation.String(f[key])
}

func (f Form) Decimal(key string) (decimal.Decimal, error) {
	s := f.String(key)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Errors: map[string]string{key: "Please enter a valid number"}}
	}
	return d, nil
}

// Int reads a whole number, truncating any fraction.
func (f Form) Int(key string) (int, error) {
	s := f.String(key)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ValidationError{Errors: map[string]string{key: "Please enter a whole number"}}
	}
	return int(n), nil
}
