package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Collection keys in the entity store.
const (
	ClientsKey      = "clients"
	RoomsKey        = "rooms"
	ReservationsKey = "reservations"
	ServicesKey     = "services"
	StaffKey        = "staff"
	UsersKey        = "users"
)

func init() {
	// Amounts travel as JSON numbers, the way the console has always stored them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base carries the fields every stored record shares. ID and CreatedAt are
// assigned once by the store and never change afterwards.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Base) Meta() *Base { return b }

// Record is implemented by every entity that lives in a collection.
type Record interface {
	Meta() *Base
	Normalize()
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// title maps "evening" / "EVENING" to "Evening".
func title(s string) string {
	s = lower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
