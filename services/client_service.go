package services

import (
	"log/slog"

	"hotel-console/export"
	"hotel-console/models"
	"hotel-console/storage"
)

type ClientService struct {
	*Crud[models.Client, *models.Client]
}

func NewClientService(store *storage.Store, log *slog.Logger) *ClientService {
	return &ClientService{Crud: &Crud[models.Client, *models.Client]{
		Items: storage.NewCollection[models.Client](store, models.ClientsKey),
		rules: map[string][]string{
			"name":        {"required"},
			"email":       {"required", "email"},
			"phone":       {"required", "phone"},
			"nationality": {"required"},
			"stays":       {"integer"},
		},
		parse:  parseClient,
		filter: filterClient,
		log:    log,
	}}
}

func parseClient(f Form) (*models.Client, error) {
	stays, err := f.Int("stays")
	if err != nil {
		return nil, err
	}
	return &models.Client{
		Name:        f.String("name"),
		Email:       f.String("email"),
		Phone:       f.String("phone"),
		Nationality: f.String("nationality"),
		Stays:       stays,
	}, nil
}

func filterClient(c *models.Client, f ListFilter) bool {
	q := f.query()
	return q == "" || contains(q, c.Name, c.Email, c.Phone, c.Nationality)
}

func (s *ClientService) Export() (string, string, []export.Column) {
	return "clients", "Clients Report", []export.Column{
		{Field: "name", Label: "Name"},
		{Field: "email", Label: "Email"},
		{Field: "phone", Label: "Phone"},
		{Field: "nationality", Label: "Nationality"},
		{Field: "stays", Label: "Stays"},
	}
}
