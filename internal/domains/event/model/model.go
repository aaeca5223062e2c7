package model

import (
	"strconv"
	"time"

	"busbooking/shared/money"
)

type Type string

const (
	TypeBookingCreated     Type = "booking.created"
	TypeBookingCancelled   Type = "booking.cancelled"
	TypeBookingTransferred Type = "booking.transferred"
)

type BookingEvent struct {
	Type       Type         `json:"type"`
	BookingID  int64        `json:"booking_id"`
	UserID     int64        `json:"user_id"`
	BusID      int64        `json:"bus_id,omitempty"`
	SeatNumber string       `json:"seat_number,omitempty"`
	Amount     money.Amount `json:"amount,omitempty"`
	Status     string       `json:"status,omitempty"`
	NewBusID   int64        `json:"new_bus_id,omitempty"`
	NewSeatID  int64        `json:"new_seat_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// Key partitions by booking so the events of one booking stay ordered.
func (e BookingEvent) Key() string {
	return "booking-" + strconv.FormatInt(e.BookingID, 10)
}
