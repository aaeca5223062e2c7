// Package draft accumulates a multi-seat booking intent for one bus before payment.
//
// The amount of a draft is always the bus price times the number of selected seats and
// is recomputed inside the seat map toggle callback, so it reflects the selection as it
// is after each toggle. Nothing here talks to the network.
package draft

import (
	"strings"
	"time"

	"busbooking/infras/busapi"
	busModel "busbooking/internal/domains/bus/model"
	"busbooking/internal/domains/booking/model"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"
)

const (
	MessageNoSeats             = "Please select at least one seat"
	MessageIncompletePassenger = "Please fill in all passenger details"
)

type Draft struct {
	ID          string           `json:"id"`
	UserID      int64            `json:"user_id"`
	BusID       int64            `json:"bus_id"`
	BookingDate string           `json:"booking_date"`
	Bus         busModel.Bus     `json:"bus"`
	Seats       []seatModel.Seat `json:"seats"`
	Counts      seatModel.Counts `json:"counts"`
	SeatNumbers []string         `json:"seat_numbers"`
	Amount      money.Amount     `json:"amount"`
	CreatedAt   time.Time        `json:"created_at"`
}

// New starts an empty selection for bus; any earlier selection is not carried over.
func New(id string, sess session.Session, bus busModel.Bus, seats []seatModel.Seat, counts seatModel.Counts, bookingDate string, now time.Time) *Draft {
	return &Draft{
		ID:          id,
		UserID:      sess.UserID(),
		BusID:       bus.ID,
		BookingDate: bookingDate,
		Bus:         bus,
		Seats:       seats,
		Counts:      counts,
		SeatNumbers: []string{},
		Amount:      0,
		CreatedAt:   now,
	}
}

// SeatMap builds the seat map over the draft's seats with the draft's selection bound to it.
func (d *Draft) SeatMap(rowWidth int) (*seatmap.Map, error) {
	return seatmap.Build(d.Seats, d.SeatNumbers, rowWidth, d.OnToggle)
}

// OnToggle keeps the seat numbers and the amount in step with the seat map selection.
func (d *Draft) OnToggle(_ string, _ bool, selection seatmap.Selection) {
	d.SeatNumbers = selection.Numbers()
	d.Amount = d.Bus.Price.Times(selection.Len())
}

// Toggle routes one click through the seat map. A priority seat is only taken when acknowledged.
func (d *Draft) Toggle(m *seatmap.Map, seatNumber string, acknowledged bool) (seatmap.Outcome, error) {
	outcome, err := m.Click(seatNumber)
	if err != nil {
		return outcome, err
	}

	if outcome.Kind == seatmap.OutcomeConfirmationRequired && acknowledged {
		return m.Confirm(seatNumber)
	}

	return outcome, nil
}

// Release drops seats that were booked by a partially failed payment so they are not paid twice.
func (d *Draft) Release(seatNumbers ...string) {
	kept := d.SeatNumbers[:0]

	for _, number := range d.SeatNumbers {
		booked := false

		for _, released := range seatNumbers {
			if number == released {
				booked = true

				break
			}
		}

		if !booked {
			kept = append(kept, number)
		}
	}

	d.SeatNumbers = kept
	d.Amount = d.Bus.Price.Times(len(kept))
}

// Checkout requires at least one seat.
func (d *Draft) Checkout() error {
	if len(d.SeatNumbers) == 0 {
		return failure.Validation(MessageNoSeats) //nolint:wrapcheck
	}

	return nil
}

// AdditionalSeats are the seats after the first, which is always the signed-in user's.
func (d *Draft) AdditionalSeats() []string {
	if len(d.SeatNumbers) <= 1 {
		return []string{}
	}

	return append([]string{}, d.SeatNumbers[1:]...)
}

// Plan validates every additional passenger and returns one booking request per seat, in selection order.
// Each request carries the unit price, never the draft total.
func (d *Draft) Plan(sess session.Session, passengers []model.Passenger) ([]busapi.BookingRequest, error) {
	if err := d.Checkout(); err != nil {
		return nil, err
	}

	bySeat := make(map[string]model.Passenger, len(passengers))
	for _, passenger := range passengers {
		bySeat[passenger.SeatNumber] = passenger
	}

	names := make([]string, len(d.SeatNumbers))
	names[0] = sess.DisplayName()

	for i, number := range d.SeatNumbers[1:] {
		passenger, ok := bySeat[number]
		if !ok || !Complete(passenger) {
			return nil, failure.Validation(MessageIncompletePassenger) //nolint:wrapcheck
		}

		names[i+1] = strings.TrimSpace(passenger.Name)
	}

	requests := make([]busapi.BookingRequest, len(d.SeatNumbers))
	for i, number := range d.SeatNumbers {
		requests[i] = busapi.BookingRequest{
			UserID:      d.UserID,
			BusID:       d.BusID,
			BookingDate: d.BookingDate,
			SeatNumber:  number,
			Amount:      d.Bus.Price,
			Status:      string(model.StatusConfirmed),
			User:        &busapi.Passenger{Name: names[i]},
			Bus:         &busapi.BusSummary{Name: d.Bus.Name, Route: d.Bus.Route},
		}
	}

	return requests, nil
}

// Complete reports whether every passenger detail is filled in.
func Complete(passenger model.Passenger) bool {
	return strings.TrimSpace(passenger.Name) != "" &&
		passenger.Age > 0 &&
		strings.TrimSpace(passenger.PhoneNumber) != "" &&
		strings.TrimSpace(passenger.Address) != ""
}
