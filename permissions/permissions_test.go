package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-console/models"
)

func TestMutationRights(t *testing.T) {
	admin := &models.Session{Role: models.RoleAdmin}
	user := &models.Session{Role: models.RoleUser}

	for _, fn := range []func(*models.Session) bool{CanCreate, CanEdit, CanDelete} {
		assert.True(t, fn(admin))
		assert.False(t, fn(user))
		assert.False(t, fn(nil))
		assert.False(t, fn(&models.Session{Role: "Admin"}))
	}
}

func TestPagesAndWidgets(t *testing.T) {
	admin := &models.Session{Role: models.RoleAdmin}
	user := &models.Session{Role: models.RoleUser}

	assert.True(t, CanViewPage(admin, PageStaff))
	assert.False(t, CanViewPage(user, PageStaff))
	assert.False(t, CanViewPage(user, PageServices))
	assert.True(t, CanViewPage(user, "clients"))
	assert.False(t, CanViewPage(nil, "clients"))

	assert.Equal(t, []string{"dashboard", "clients", "rooms", "reservations"}, NavLinks(user))
	assert.Len(t, NavLinks(admin), 6)
	assert.Empty(t, NavLinks(nil))

	assert.Equal(t, []string{WidgetReservationsChart, WidgetOccupancyChart, WidgetClientsChart}, VisibleWidgets(user))
	assert.Len(t, VisibleWidgets(admin), 6)
}

func TestFor(t *testing.T) {
	caps := For(&models.Session{Role: models.RoleUser})
	assert.Equal(t, models.RoleUser, caps.Role)
	assert.False(t, caps.CanCreate)
	assert.NotContains(t, caps.Widgets, WidgetRevenueKPI)

	caps = For(nil)
	assert.Empty(t, caps.Role)
	assert.Empty(t, caps.Pages)
}
