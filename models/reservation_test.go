package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	clients map[ClientRef]*Client
	rooms   map[RoomRef]*Room
}

func (f fakeResolver) Client(id ClientRef) (*Client, bool) {
	c, ok := f.clients[id]
	return c, ok
}

func (f fakeResolver) Room(id RoomRef) (*Room, bool) {
	r, ok := f.rooms[id]
	return r, ok
}

func TestReservationRefs(t *testing.T) {
	res := fakeResolver{
		clients: map[ClientRef]*Client{"1": {Name: "John Smith"}},
		rooms:   map[RoomRef]*Room{"1": {Number: "101"}},
	}

	assert.Equal(t, "John Smith", ClientRef("1").Name(res))
	assert.Equal(t, "101", RoomRef("1").Number(res))
	assert.Equal(t, UnknownClient, ClientRef("9").Name(res))
	assert.Equal(t, UnknownRoom, RoomRef("9").Number(res))
	assert.Equal(t, UnknownClient, ClientRef("1").Name(nil))
}

func TestReservationValidate(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		wantErr bool
	}{
		{"valid", "2024-01-15", "2024-01-20", false},
		{"same day", "2024-01-15", "2024-01-15", true},
		{"reversed", "2024-01-20", "2024-01-15", true},
		{"unreadable", "soon", "2024-01-15", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{CheckIn: tt.in, CheckOut: tt.out}
			if tt.wantErr {
				assert.Error(t, r.Validate())
			} else {
				assert.NoError(t, r.Validate())
			}
		})
	}
}

func TestReservationDerivedFields(t *testing.T) {
	r := &Reservation{CheckIn: "2024-01-15", CheckOut: "2024-01-20", Status: ReservationConfirmed}

	assert.Equal(t, 5, r.Nights())
	assert.Equal(t, 0, r.Month())
	assert.True(t, r.Earning())

	mid := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)
	assert.True(t, r.IsActive(mid))
	assert.False(t, r.IsPast(mid))
	assert.False(t, r.IsFuture(mid))

	assert.True(t, r.IsPast(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.IsFuture(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)))

	r.Status = ReservationPending
	assert.False(t, r.IsActive(mid))
	assert.False(t, r.Earning())

	assert.Equal(t, -1, (&Reservation{CheckIn: "bad"}).Month())
	assert.Equal(t, 0, (&Reservation{CheckIn: "bad"}).Nights())
}

func TestNormalize(t *testing.T) {
	r := &Reservation{Status: "  CONFIRMED ", ClientID: " 1 "}
	r.Normalize()
	assert.Equal(t, ReservationConfirmed, r.Status)
	assert.Equal(t, ClientRef("1"), r.ClientID)

	room := &Room{Type: "Suite"}
	room.Normalize()
	assert.Equal(t, RoomSuite, room.Type)
	assert.Equal(t, RoomAvailable, room.Status)

	s := &Staff{Role: "chef", Shift: "NIGHT"}
	s.Normalize()
	assert.Equal(t, "Chef", s.Role)
	assert.Equal(t, ShiftNight, s.Shift)

	c := &Client{Stays: -2}
	c.Normalize()
	assert.Equal(t, 0, c.Stays)
}

func TestSessionIsAdmin(t *testing.T) {
	var none *Session
	assert.False(t, none.IsAdmin())
	assert.False(t, (&Session{Role: RoleUser}).IsAdmin())
	assert.True(t, (&Session{Role: RoleAdmin}).IsAdmin())
}
