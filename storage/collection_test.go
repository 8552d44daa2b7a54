package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-console/models"
)

func validClient() *models.Client {
	return &models.Client{
		Name:        " John Smith ",
		Email:       "john@example.com",
		Phone:       "+1234567890",
		Nationality: "USA",
		Stays:       3,
	}
}

func TestCollection_CreateNormalizesAndAssignsMeta(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	clients := NewCollection[models.Client](s, models.ClientsKey)

	c, err := clients.Create(ctx, validClient())
	require.NoError(t, err)
	assert.Equal(t, "id-1", c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, "John Smith", c.Name)

	got, err := clients.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCollection_CreateRejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	clients := NewCollection[models.Client](s, models.ClientsKey)

	bad := validClient()
	bad.Email = "not-an-email"
	_, err := clients.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Equal(t, 0, clients.Count(ctx))
}

func TestCollection_GetMissing(t *testing.T) {
	s, _ := newTestStore(t)
	rooms := NewCollection[models.Room](s, models.RoomsKey)

	_, err := rooms.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_UpdateOnlyTouchesNamedFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	rooms := NewCollection[models.Room](s, models.RoomsKey)

	r, err := rooms.Create(ctx, &models.Room{Number: "101", Type: "single", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, r.Status)

	updated, err := rooms.Update(ctx, r.ID, Fields{"status": "OCCUPIED"})
	require.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, updated.Status)
	assert.Equal(t, "101", updated.Number)
	assert.True(t, decimal.NewFromInt(100).Equal(updated.Price))
	assert.Equal(t, r.CreatedAt, updated.CreatedAt)
}

func TestCollection_UpdateRejectsUnknownField(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	rooms := NewCollection[models.Room](s, models.RoomsKey)
	r, err := rooms.Create(ctx, &models.Room{Number: "101", Type: "single", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = rooms.Update(ctx, r.ID, Fields{"floor": 3})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = rooms.Update(ctx, "missing", Fields{"status": "occupied"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_UpdateRejectsInvalidResult(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	rooms := NewCollection[models.Room](s, models.RoomsKey)
	r, err := rooms.Create(ctx, &models.Room{Number: "101", Type: "single", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = rooms.Update(ctx, r.ID, Fields{"type": "penthouse"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	got, err := rooms.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "single", got.Type)
}

func TestCollection_AllSkipsUndecodableRecords(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.Create(ctx, models.ClientsKey, Fields{"name": "Broken", "stays": "many"})
	require.NoError(t, err)
	clients := NewCollection[models.Client](s, models.ClientsKey)
	_, err = clients.Create(ctx, validClient())
	require.NoError(t, err)

	all := clients.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "John Smith", all[0].Name)
}

func TestCollection_ReservationDateOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	reservations := NewCollection[models.Reservation](s, models.ReservationsKey)

	_, err := reservations.Create(ctx, &models.Reservation{
		ClientID: "1",
		RoomID:   "1",
		CheckIn:  "2025-06-10",
		CheckOut: "2025-06-10",
		Price:    decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	r, err := reservations.Create(ctx, &models.Reservation{
		ClientID: "1",
		RoomID:   "1",
		CheckIn:  "2025-06-10",
		CheckOut: "2025-06-12",
		Price:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, r.Status)
}

func TestCollection_SavePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	services := NewCollection[models.Service](s, models.ServicesKey)

	svc, err := services.Save(ctx, &models.Service{Name: "Spa", Price: decimal.NewFromInt(80)})
	require.NoError(t, err)
	require.NotEmpty(t, svc.ID)

	svc.Name = "Spa Deluxe"
	again, err := services.Save(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, "Spa Deluxe", again.Name)
	assert.Equal(t, svc.CreatedAt, again.CreatedAt)
	assert.Equal(t, 1, services.Count(ctx))
}

func TestToFieldsKeepsNumbersExact(t *testing.T) {
	f, err := ToFields(&models.Room{Number: "1", Price: decimal.RequireFromString("199.99")})
	require.NoError(t, err)
	assert.Equal(t, "199.99", f["price"].(interface{ String() string }).String())
}
