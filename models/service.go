package models

import "github.com/shopspring/decimal"

// Service is an extra the hotel sells on top of a stay (spa, laundry, ...).
type Service struct {
	Base
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
}

func (s *Service) Normalize() {
	s.Name = clean(s.Name)
	s.Description = clean(s.Description)
}
