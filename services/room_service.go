package services

import (
	"log/slog"

	"hotel-console/export"
	"hotel-console/models"
	"hotel-console/storage"
)

type RoomService struct {
	*Crud[models.Room, *models.Room]
}

func NewRoomService(store *storage.Store, log *slog.Logger) *RoomService {
	return &RoomService{Crud: &Crud[models.Room, *models.Room]{
		Items: storage.NewCollection[models.Room](store, models.RoomsKey),
		rules: map[string][]string{
			"number": {"required"},
			"type":   {"required"},
			"price":  {"required", "positiveNumber"},
			"status": {"required"},
		},
		parse:  parseRoom,
		filter: filterRoom,
		log:    log,
	}}
}

func parseRoom(f Form) (*models.Room, error) {
	price, err := f.Decimal("price")
	if err != nil {
		return nil, err
	}
	return &models.Room{
		Number: f.String("number"),
		Type:   f.String("type"),
		Price:  price,
		Status: f.String("status"),
	}, nil
}

func filterRoom(r *models.Room, f ListFilter) bool {
	if !selected(f.Status, r.Status) || !selected(f.Type, r.Type) {
		return false
	}
	q := f.query()
	return q == "" || contains(q, r.Number, r.Type)
}

func (s *RoomService) Export() (string, string, []export.Column) {
	return "rooms", "Rooms Report", []export.Column{
		{Field: "number", Label: "Room Number"},
		{Field: "type", Label: "Type"},
		{Field: "price", Label: "Price"},
		{Field: "status", Label: "Status"},
	}
}
