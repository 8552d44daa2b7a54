package services

import (
	"log/slog"

	"hotel-console/export"
	"hotel-console/models"
	"hotel-console/storage"
)

type StaffService struct {
	*Crud[models.Staff, *models.Staff]
}

func NewStaffService(store *storage.Store, log *slog.Logger) *StaffService {
	return &StaffService{Crud: &Crud[models.Staff, *models.Staff]{
		Items: storage.NewCollection[models.Staff](store, models.StaffKey),
		rules: map[string][]string{
			"name":   {"required"},
			"role":   {"required"},
			"salary": {"required", "positiveNumber"},
			"shift":  {"required"},
		},
		parse:  parseStaff,
		filter: filterStaff,
		log:    log,
	}}
}

func parseStaff(f Form) (*models.Staff, error) {
	salary, err := f.Decimal("salary")
	if err != nil {
		return nil, err
	}
	return &models.Staff{
		Name:   f.String("name"),
		Role:   f.String("role"),
		Salary: salary,
		Shift:  f.String("shift"),
	}, nil
}

// Status filters on shift and Type on role.
func filterStaff(s *models.Staff, f ListFilter) bool {
	if !selected(f.Status, s.Shift) || !selected(f.Type, s.Role) {
		return false
	}
	q := f.query()
	return q == "" || contains(q, s.Name, s.Role, s.Shift)
}

func (s *StaffService) Export() (string, string, []export.Column) {
	return "staff", "Staff Report", []export.Column{
		{Field: "name", Label: "Name"},
		{Field: "role", Label: "Role"},
		{Field: "salary", Label: "Salary"},
		{Field: "shift", Label: "Shift"},
	}
}
