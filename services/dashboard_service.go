package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-console/models"
	"hotel-console/permissions"
	"hotel-console/storage"
)

type KPIs struct {
	TotalRooms        int     `json:"totalRooms"`
	OccupiedRooms     int     `json:"occupiedRooms"`
	AvailableRooms    int     `json:"availableRooms"`
	TotalClients      int     `json:"totalClients"`
	TotalReservations int     `json:"totalReservations"`
	TotalRevenue      *string `json:"totalRevenue,omitempty"`
}

// Dashboard holds the figures behind the dashboard widgets. Widgets the
// session may not see are left empty.
type Dashboard struct {
	KPIs                KPIs              `json:"kpis"`
	ReservationsByMonth [12]int           `json:"reservationsByMonth"`
	RoomOccupancy       map[string]int    `json:"roomOccupancy"`
	ClientsByCountry    map[string]int    `json:"clientsByCountry"`
	RevenueByMonth      []decimal.Decimal `json:"revenueByMonth,omitempty"`
	StaffDistribution   map[string]int    `json:"staffDistribution,omitempty"`
	Widgets             []string          `json:"widgets"`
}

type DashboardService struct {
	clients      *storage.Collection[models.Client, *models.Client]
	rooms        *storage.Collection[models.Room, *models.Room]
	reservations *storage.Collection[models.Reservation, *models.Reservation]
	staff        *storage.Collection[models.Staff, *models.Staff]
}

func NewDashboardService(store *storage.Store) *DashboardService {
	return &DashboardService{
		clients:      storage.NewCollection[models.Client](store, models.ClientsKey),
		rooms:        storage.NewCollection[models.Room](store, models.RoomsKey),
		reservations: storage.NewCollection[models.Reservation](store, models.ReservationsKey),
		staff:        storage.NewCollection[models.Staff](store, models.StaffKey),
	}
}

// TotalRevenue sums confirmed and completed reservations.
func (s *DashboardService) TotalRevenue(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.reservations.All(ctx) {
		if r.Earning() {
			total = total.Add(r.Price)
		}
	}
	return total
}

func (s *DashboardService) KPIs(ctx context.Context) KPIs {
	rooms := s.rooms.All(ctx)
	k := KPIs{
		TotalRooms:        len(rooms),
		TotalClients:      s.clients.Count(ctx),
		TotalReservations: s.reservations.Count(ctx),
	}
	for _, r := range rooms {
		switch r.Status {
		case models.RoomOccupied:
			k.OccupiedRooms++
		case models.RoomAvailable:
			k.AvailableRooms++
		}
	}
	revenue := s.TotalRevenue(ctx).StringFixed(2)
	k.TotalRevenue = &revenue
	return k
}

// ReservationsByMonth counts reservations by check-in month, January first.
func (s *DashboardService) ReservationsByMonth(ctx context.Context) [12]int {
	var out [12]int
	for _, r := range s.reservations.All(ctx) {
		if m := r.Month(); m >= 0 {
			out[m]++
		}
	}
	return out
}

func (s *DashboardService) RevenueByMonth(ctx context.Context) []decimal.Decimal {
	out := make([]decimal.Decimal, 12)
	for i := range out {
		out[i] = decimal.Zero
	}
	for _, r := range s.reservations.All(ctx) {
		if m := r.Month(); m >= 0 && r.Earning() {
			out[m] = out[m].Add(r.Price)
		}
	}
	return out
}

func (s *DashboardService) RoomOccupancy(ctx context.Context) map[string]int {
	out := make(map[string]int, len(models.RoomStatuses))
	for _, st := range models.RoomStatuses {
		out[st] = 0
	}
	for _, r := range s.rooms.All(ctx) {
		if _, ok := out[r.Status]; ok {
			out[r.Status]++
		}
	}
	return out
}

// ClientsByCountry groups clients by nationality; blank reads as "Unknown".
func (s *DashboardService) ClientsByCountry(ctx context.Context) map[string]int {
	out := map[string]int{}
	for _, c := range s.clients.All(ctx) {
		country := c.Nationality
		if country == "" {
			country = "Unknown"
		}
		out[country]++
	}
	return out
}

// StaffDistribution counts staff per shift. Day shifts are reported as
// morning.
func (s *DashboardService) StaffDistribution(ctx context.Context) map[string]int {
	out := map[string]int{"morning": 0, "evening": 0, "night": 0}
	for _, st := range s.staff.All(ctx) {
		shift := strings.ToLower(st.Shift)
		switch {
		case strings.Contains(shift, "morning"), strings.Contains(shift, "day"):
			out["morning"]++
		case strings.Contains(shift, "evening"):
			out["evening"]++
		case strings.Contains(shift, "night"):
			out["night"]++
		}
	}
	return out
}

// For assembles the dashboard the session is allowed to see.
func (s *DashboardService) For(ctx context.Context, sess *models.Session) Dashboard {
	d := Dashboard{
		KPIs:                s.KPIs(ctx),
		ReservationsByMonth: s.ReservationsByMonth(ctx),
		RoomOccupancy:       s.RoomOccupancy(ctx),
		ClientsByCountry:    s.ClientsByCountry(ctx),
		Widgets:             permissions.VisibleWidgets(sess),
	}
	if !permissions.CanViewWidget(sess, permissions.WidgetRevenueKPI) {
		d.KPIs.TotalRevenue = nil
	}
	if permissions.CanViewWidget(sess, permissions.WidgetRevenueChart) {
		d.RevenueByMonth = s.RevenueByMonth(ctx)
	}
	if permissions.CanViewWidget(sess, permissions.WidgetStaffChart) {
		d.StaffDistribution = s.StaffDistribution(ctx)
	}
	return d
}
