package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

var ReservationStatuses = []string{ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled}

// Sentinels shown when a reservation points at a record that no longer exists.
const (
	UnknownClient = "Unknown Client"
	UnknownRoom   = "Unknown Room"
)

var ErrDateRange = errors.New("check-out date must be after check-in date")

// ClientRef and RoomRef are bare ids; nothing keeps them pointing at live
// records, so they are only ever read through a Resolver.
type (
	ClientRef string
	RoomRef   string
)

// Resolver looks up the targets of reservation references.
type Resolver interface {
	Client(id ClientRef) (*Client, bool)
	Room(id RoomRef) (*Room, bool)
}

func (r ClientRef) Name(res Resolver) string {
	if res != nil {
		if c, ok := res.Client(r); ok && c.Name != "" {
			return c.Name
		}
	}
	return UnknownClient
}

func (r RoomRef) Number(res Resolver) string {
	if res != nil {
		if room, ok := res.Room(r); ok && room.Number != "" {
			return room.Number
		}
	}
	return UnknownRoom
}

type Reservation struct {
	Base
	ClientID ClientRef       `json:"clientId" validate:"required"`
	RoomID   RoomRef         `json:"roomId" validate:"required"`
	CheckIn  string          `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string          `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Status   string          `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func (r *Reservation) Normalize() {
	r.ClientID = ClientRef(clean(string(r.ClientID)))
	r.RoomID = RoomRef(clean(string(r.RoomID)))
	r.CheckIn = clean(r.CheckIn)
	r.CheckOut = clean(r.CheckOut)
	r.Status = lower(r.Status)
	if r.Status == "" {
		r.Status = ReservationPending
	}
}

// Validate enforces checkOut strictly after checkIn.
func (r *Reservation) Validate() error {
	in, out, err := r.dates()
	if err != nil {
		return err
	}
	if !out.After(in) {
		return ErrDateRange
	}
	return nil
}

func (r *Reservation) dates() (time.Time, time.Time, error) {
	in, err := time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := time.Parse(DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

// Nights is the number of whole days between check-in and check-out,
// or 0 when either date is unreadable.
func (r *Reservation) Nights() int {
	in, out, err := r.dates()
	if err != nil {
		return 0
	}
	d := out.Sub(in)
	if d < 0 {
		d = -d
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// IsActive reports whether a confirmed stay covers now.
func (r *Reservation) IsActive(now time.Time) bool {
	in, out, err := r.dates()
	if err != nil {
		return false
	}
	return r.Status == ReservationConfirmed && !now.Before(in) && !now.After(out)
}

func (r *Reservation) IsPast(now time.Time) bool {
	_, out, err := r.dates()
	return err == nil && now.After(out)
}

func (r *Reservation) IsFuture(now time.Time) bool {
	in, _, err := r.dates()
	return err == nil && now.Before(in)
}

// Month returns the zero-based check-in month, or -1 when unreadable.
func (r *Reservation) Month() int {
	in, err := time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return -1
	}
	return int(in.Month()) - 1
}

// Earning reports whether the reservation counts toward revenue.
func (r *Reservation) Earning() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationCompleted
}
