package services

import (
	"log/slog"

	"hotel-console/export"
	"hotel-console/models"
	"hotel-console/storage"
)

// ServiceCatalog manages the extras sold to guests.
type ServiceCatalog struct {
	*Crud[models.Service, *models.Service]
}

func NewServiceCatalog(store *storage.Store, log *slog.Logger) *ServiceCatalog {
	return &ServiceCatalog{Crud: &Crud[models.Service, *models.Service]{
		Items: storage.NewCollection[models.Service](store, models.ServicesKey),
		rules: map[string][]string{
			"name":  {"required"},
			"price": {"required", "positiveNumber"},
		},
		parse:  parseService,
		filter: filterService,
		log:    log,
	}}
}

func parseService(f Form) (*models.Service, error) {
	price, err := f.Decimal("price")
	if err != nil {
		return nil, err
	}
	return &models.Service{
		Name:        f.String("name"),
		Description: f.String("description"),
		Price:       price,
	}, nil
}

func filterService(s *models.Service, f ListFilter) bool {
	q := f.query()
	return q == "" || contains(q, s.Name, s.Description)
}

func (s *ServiceCatalog) Export() (string, string, []export.Column) {
	return "services", "Services Report", []export.Column{
		{Field: "name", Label: "Service Name"},
		{Field: "description", Label: "Description"},
		{Field: "price", Label: "Price"},
	}
}
