package services

import (
	"context"
	"log/slog"
	"time"

	"hotel-console/export"
	"hotel-console/models"
	"hotel-console/storage"
	"hotel-console/validation"
)

// ReservationView is a reservation with its references resolved for display.
type ReservationView struct {
	*models.Reservation
	ClientName string `json:"clientName"`
	RoomNumber string `json:"roomNumber"`
	Nights     int    `json:"nights"`
}

// lookup resolves reservation references against one snapshot of the
// clients and rooms collections.
type lookup struct {
	clients map[models.ClientRef]*models.Client
	rooms   map[models.RoomRef]*models.Room
}

func (l *lookup) Client(id models.ClientRef) (*models.Client, bool) {
	c, ok := l.clients[id]
	return c, ok
}

func (l *lookup) Room(id models.RoomRef) (*models.Room, bool) {
	r, ok := l.rooms[id]
	return r, ok
}

type ReservationService struct {
	crud    *Crud[models.Reservation, *models.Reservation]
	clients *storage.Collection[models.Client, *models.Client]
	rooms   *storage.Collection[models.Room, *models.Room]
	now     func() time.Time
}

func NewReservationService(store *storage.Store, log *slog.Logger) *ReservationService {
	s := &ReservationService{
		clients: storage.NewCollection[models.Client](store, models.ClientsKey),
		rooms:   storage.NewCollection[models.Room](store, models.RoomsKey),
		now:     time.Now,
	}
	s.crud = &Crud[models.Reservation, *models.Reservation]{
		Items: storage.NewCollection[models.Reservation](store, models.ReservationsKey),
		rules: map[string][]string{
			"clientId": {"required"},
			"roomId":   {"required"},
			"checkIn":  {"required"},
			"checkOut": {"required"},
			"price":    {"required", "positiveNumber"},
			"status":   {"required"},
		},
		parse: parseReservation,
		check: s.checkDates,
		log:   log,
	}
	return s
}

func parseReservation(f Form) (*models.Reservation, error) {
	price, err := f.Decimal("price")
	if err != nil {
		return nil, err
	}
	return &models.Reservation{
		ClientID: models.ClientRef(f.String("clientId")),
		RoomID:   models.RoomRef(f.String("roomId")),
		CheckIn:  f.String("checkIn"),
		CheckOut: f.String("checkOut"),
		Price:    price,
		Status:   f.String("status"),
	}, nil
}

// checkDates rejects inverted stays, and new stays starting before today.
func (s *ReservationService) checkDates(_ context.Context, f Form, creating bool) map[string]string {
	in, out := f.String("checkIn"), f.String("checkOut")
	if _, err := time.Parse(models.DateLayout, in); err != nil {
		return map[string]string{"checkIn": "Please enter a valid date"}
	}
	if _, err := time.Parse(models.DateLayout, out); err != nil {
		return map[string]string{"checkOut": "Please enter a valid date"}
	}
	if !validation.ValidateDateRange(in, out) {
		return map[string]string{"checkOut": "Check-out date must be after check-in date"}
	}
	if creating {
		today := s.now().Format(models.DateLayout)
		if in < today {
			return map[string]string{"checkIn": "Check-in date cannot be in the past"}
		}
	}
	return nil
}

func (s *ReservationService) resolver(ctx context.Context) *lookup {
	l := &lookup{
		clients: make(map[models.ClientRef]*models.Client),
		rooms:   make(map[models.RoomRef]*models.Room),
	}
	for _, c := range s.clients.All(ctx) {
		l.clients[models.ClientRef(c.ID)] = c
	}
	for _, r := range s.rooms.All(ctx) {
		l.rooms[models.RoomRef(r.ID)] = r
	}
	return l
}

func view(r *models.Reservation, res models.Resolver) *ReservationView {
	return &ReservationView{
		Reservation: r,
		ClientName:  r.ClientID.Name(res),
		RoomNumber:  r.RoomID.Number(res),
		Nights:      r.Nights(),
	}
}

// List filters on status and searches client name and room number.
func (s *ReservationService) List(ctx context.Context, f ListFilter) []*ReservationView {
	res := s.resolver(ctx)
	q := f.query()
	out := []*ReservationView{}
	for _, r := range s.crud.Items.All(ctx) {
		if !selected(f.Status, r.Status) {
			continue
		}
		v := view(r, res)
		if q != "" && !contains(q, v.ClientName, v.RoomNumber) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *ReservationService) Get(ctx context.Context, id string) (*ReservationView, error) {
	r, err := s.crud.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(r, s.resolver(ctx)), nil
}

func (s *ReservationService) Create(ctx context.Context, sess *models.Session, form Form) (*ReservationView, error) {
	r, err := s.crud.Create(ctx, sess, form)
	if err != nil {
		return nil, err
	}
	return view(r, s.resolver(ctx)), nil
}

func (s *ReservationService) Update(ctx context.Context, sess *models.Session, id string, form Form) (*ReservationView, error) {
	r, err := s.crud.Update(ctx, sess, id, form)
	if err != nil {
		return nil, err
	}
	return view(r, s.resolver(ctx)), nil
}

func (s *ReservationService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.crud.Delete(ctx, sess, id)
}

func (s *ReservationService) Export() (string, string, []export.Column) {
	return "reservations", "Reservations Report", []export.Column{
		{Field: "clientName", Label: "Client"},
		{Field: "roomNumber", Label: "Room"},
		{Field: "checkIn", Label: "Check-in"},
		{Field: "checkOut", Label: "Check-out"},
		{Field: "price", Label: "Price"},
		{Field: "status", Label: "Status"},
	}
}
