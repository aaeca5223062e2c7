package model

import (
	"busbooking/infras/busapi"
	"busbooking/shared/money"
)

const EntityName = "booking"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

type Booking struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	BusID       int64        `json:"bus_id"`
	BookingDate string       `json:"booking_date"`
	SeatNumber  string       `json:"seat_number"`
	Amount      money.Amount `json:"amount"`
	Status      Status       `json:"status"`
}

func FromAPI(booking busapi.Booking) Booking {
	return Booking{
		ID:          booking.ID,
		UserID:      booking.UserID,
		BusID:       booking.BusID,
		BookingDate: booking.BookingDate,
		SeatNumber:  booking.SeatNumber,
		Amount:      booking.Amount,
		Status:      Status(booking.Status),
	}
}

func FromAPIs(bookings []busapi.Booking) []Booking {
	res := make([]Booking, len(bookings))
	for i, booking := range bookings {
		res[i] = FromAPI(booking)
	}

	return res
}

func (b Booking) Confirmed() bool {
	return b.Status == StatusConfirmed
}

// Passenger travels on one of the additional seats of a multi-seat booking.
type Passenger struct {
	SeatNumber  string `json:"seat_number"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}
