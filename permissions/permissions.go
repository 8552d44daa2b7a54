// Package permissions decides what a session may do and see in the console.
//
// The checks are UI policy evaluated in the same process that holds the
// data: anything with direct access to the store can bypass them.
package permissions

import "hotel-console/models"

// Pages only admins may open.
const (
	PageStaff    = "staff"
	PageServices = "services"
)

// Dashboard widgets.
const (
	WidgetRevenueKPI        = "revenue"
	WidgetReservationsChart = "reservations-chart"
	WidgetOccupancyChart    = "occupancy-chart"
	WidgetClientsChart      = "clients-chart"
	WidgetRevenueChart      = "revenue-chart"
	WidgetStaffChart        = "staff-chart"
)

var (
	allWidgets = []string{
		WidgetRevenueKPI,
		WidgetReservationsChart,
		WidgetOccupancyChart,
		WidgetClientsChart,
		WidgetRevenueChart,
		WidgetStaffChart,
	}
	adminWidgets = map[string]bool{
		WidgetRevenueKPI:   true,
		WidgetRevenueChart: true,
		WidgetStaffChart:   true,
	}
	adminPages = map[string]bool{
		PageStaff:    true,
		PageServices: true,
	}
	navPages = []string{"dashboard", "clients", "rooms", "reservations", PageServices, PageStaff}
)

func CanCreate(s *models.Session) bool { return s.IsAdmin() }
func CanEdit(s *models.Session) bool   { return s.IsAdmin() }
func CanDelete(s *models.Session) bool { return s.IsAdmin() }

// CanViewPage reports whether the page may be opened. Without a session
// nothing is viewable.
func CanViewPage(s *models.Session, page string) bool {
	if s == nil {
		return false
	}
	return !adminPages[page] || s.IsAdmin()
}

// CanViewWidget reports whether a dashboard widget is shown.
func CanViewWidget(s *models.Session, widget string) bool {
	if s == nil {
		return false
	}
	return !adminWidgets[widget] || s.IsAdmin()
}

func VisibleWidgets(s *models.Session) []string {
	out := make([]string, 0, len(allWidgets))
	for _, w := range allWidgets {
		if CanViewWidget(s, w) {
			out = append(out, w)
		}
	}
	return out
}

// NavLinks lists the navigation entries to render.
func NavLinks(s *models.Session) []string {
	out := make([]string, 0, len(navPages))
	for _, p := range navPages {
		if CanViewPage(s, p) {
			out = append(out, p)
		}
	}
	return out
}

// Capabilities is everything the front end needs to lay out a screen.
type Capabilities struct {
	Role      string   `json:"role"`
	CanCreate bool     `json:"canCreate"`
	CanEdit   bool     `json:"canEdit"`
	CanDelete bool     `json:"canDelete"`
	Pages     []string `json:"pages"`
	Widgets   []string `json:"widgets"`
}

func For(s *models.Session) Capabilities {
	caps := Capabilities{
		CanCreate: CanCreate(s),
		CanEdit:   CanEdit(s),
		CanDelete: CanDelete(s),
		Pages:     NavLinks(s),
		Widgets:   VisibleWidgets(s),
	}
	if s != nil {
		caps.Role = s.Role
	}
	return caps
}
