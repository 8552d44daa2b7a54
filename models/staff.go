package models

import "github.com/shopspring/decimal"

const (
	ShiftDay     = "Day"
	ShiftEvening = "Evening"
	ShiftNight   = "Night"
)

var (
	Shifts = []string{ShiftDay, ShiftEvening, ShiftNight}

	// StaffRoles lists the job titles offered by the staff form. The seed data
	// predates the form and uses "Housekeeping", so both spellings are kept.
	StaffRoles = []string{"Manager", "Receptionist", "Housekeeper", "Housekeeping", "Chef", "Security", "Maintenance"}
)

type Staff struct {
	Base
	Name   string          `json:"name" validate:"required"`
	Role   string          `json:"role" validate:"required,oneof=Manager Receptionist Housekeeper Housekeeping Chef Security Maintenance"`
	Salary decimal.Decimal `json:"salary" validate:"gte=0"`
	Shift  string          `json:"shift" validate:"required,oneof=Day Evening Night"`
}

func (s *Staff) Normalize() {
	s.Name = clean(s.Name)
	s.Role = title(s.Role)
	s.Shift = title(s.Shift)
}
