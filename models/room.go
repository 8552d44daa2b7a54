package models

import "github.com/shopspring/decimal"

const (
	RoomSingle = "single"
	RoomDouble = "double"
	RoomSuite  = "suite"
	RoomDeluxe = "deluxe"
)

const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomMaintenance = "maintenance"
)

var (
	RoomTypes    = []string{RoomSingle, RoomDouble, RoomSuite, RoomDeluxe}
	RoomStatuses = []string{RoomAvailable, RoomOccupied, RoomMaintenance}
)

// Room numbers are meant to be unique per hotel; nothing enforces it.
type Room struct {
	Base
	Number string          `json:"number" validate:"required"`
	Type   string          `json:"type" validate:"required,oneof=single double suite deluxe"`
	Price  decimal.Decimal `json:"price" validate:"gte=0"`
	Status string          `json:"status" validate:"required,oneof=available occupied maintenance"`
}

func (r *Room) Normalize() {
	r.Number = clean(r.Number)
	r.Type = lower(r.Type)
	r.Status = lower(r.Status)
	if r.Status == "" {
		r.Status = RoomAvailable
	}
}
