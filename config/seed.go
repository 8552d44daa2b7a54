package config

import (
	"time"

	"github.com/shopspring/decimal"

	"hotel-console/models"
	"hotel-console/storage"
)

func base(id string, now time.Time) models.Base {
	return models.Base{ID: id, CreatedAt: now}
}

// DefaultSeed is the sample data a fresh backend starts with.
func DefaultSeed(now time.Time) (map[string][]storage.Fields, error) {
	now = now.UTC()
	money := decimal.NewFromInt

	collections := map[string][]any{
		models.ClientsKey: {
			&models.Client{Base: base("1", now), Name: "John Doe", Email: "john@example.com", Phone: "+1234567890", Nationality: "US", Stays: 3},
			&models.Client{Base: base("2", now), Name: "Jane Smith", Email: "jane@example.com", Phone: "+1234567891", Nationality: "UK", Stays: 1},
		},
		models.RoomsKey: {
			&models.Room{Base: base("101", now), Number: "101", Type: models.RoomSingle, Price: money(100), Status: models.RoomAvailable},
			&models.Room{Base: base("102", now), Number: "102", Type: models.RoomDouble, Price: money(150), Status: models.RoomOccupied},
			&models.Room{Base: base("103", now), Number: "103", Type: models.RoomSuite, Price: money(300), Status: models.RoomAvailable},
			&models.Room{Base: base("104", now), Number: "104", Type: models.RoomDeluxe, Price: money(500), Status: models.RoomMaintenance},
		},
		models.ReservationsKey: {
			&models.Reservation{Base: base("1", now), ClientID: "1", RoomID: "102", CheckIn: "2024-12-15", CheckOut: "2024-12-20", Price: money(750), Status: models.ReservationConfirmed},
			&models.Reservation{Base: base("2", now), ClientID: "2", RoomID: "101", CheckIn: "2024-12-10", CheckOut: "2024-12-12", Price: money(200), Status: models.ReservationPending},
		},
		models.ServicesKey: {
			&models.Service{Base: base("1", now), Name: "Room Service", Description: "24/7 room service", Price: money(25)},
			&models.Service{Base: base("2", now), Name: "Spa", Description: "Full body massage", Price: money(80)},
			&models.Service{Base: base("3", now), Name: "Laundry", Description: "Dry cleaning service", Price: money(15)},
		},
		models.StaffKey: {
			&models.Staff{Base: base("1", now), Name: "Robert Johnson", Role: "Manager", Salary: money(5000), Shift: models.ShiftDay},
			&models.Staff{Base: base("2", now), Name: "Sarah Williams", Role: "Receptionist", Salary: money(2500), Shift: models.ShiftNight},
			&models.Staff{Base: base("3", now), Name: "Mike Brown", Role: "Housekeeping", Salary: money(2000), Shift: models.ShiftDay},
		},
		models.UsersKey: {
			&models.User{Base: base("1", now), Email: "admin@hotel.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
			&models.User{Base: base("2", now), Email: "user@hotel.com", Password: "user123", Name: "Regular User", Role: models.RoleUser},
		},
	}

	seed := make(map[string][]storage.Fields, len(collections))
	for key, recs := range collections {
		rows := make([]storage.Fields, 0, len(recs))
		for _, rec := range recs {
			f, err := storage.ToFields(rec)
			if err != nil {
				return nil, err
			}
			rows = append(rows, f)
		}
		seed[key] = rows
	}
	return seed, nil
}
