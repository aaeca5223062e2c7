// Package model holds the seat transfer flow as a state machine over plain values.
//
// A flow walks SelectingBooking, SelectingBus, SelectingSeat and Confirming, ends in
// Submitted and returns to SelectingBooking once its reset time has passed. Every step
// either moves the flow forward or fails without changing it.
package model

import (
	"fmt"
	"time"

	"busbooking/infras/busapi"
	bookingModel "busbooking/internal/domains/booking/model"
	busModel "busbooking/internal/domains/bus/model"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"
)

type State string

const (
	StateSelectingBooking State = "SELECTING_BOOKING"
	StateSelectingBus     State = "SELECTING_BUS"
	StateSelectingSeat    State = "SELECTING_SEAT"
	StateConfirming       State = "CONFIRMING"
	StateSubmitted        State = "SUBMITTED"
)

const (
	NoCandidatesMessage    = "no buses available"
	MessageNotAcknowledged = "Please confirm the transfer by checking the checkbox"

	messageNotOwnBooking   = "only your own confirmed bookings can be transferred"
	messageUnknownBus      = "bus is not a transfer option for this booking"
	messageSeatBooked      = "seat is already booked"
	messageUnknownSeat     = "seat is not available on this bus"
	messageNoSeatSelected  = "select a seat before confirming the transfer"
	currencySymbol         = "₹"
	refundProcessingPeriod = "5 working days"
)

// ReconciliationKind says whether the transfer costs extra, refunds, or is even.
type ReconciliationKind string

const (
	ReconciliationNone   ReconciliationKind = "none"
	ReconciliationPay    ReconciliationKind = "pay"
	ReconciliationRefund ReconciliationKind = "refund"
)

type Reconciliation struct {
	Delta  money.Amount       `json:"delta"`
	Kind   ReconciliationKind `json:"kind"`
	Notice string             `json:"notice,omitempty"`
	Label  string             `json:"label,omitempty"`
}

// Reconcile derives the acknowledgement the user has to give from delta = new price - old price.
func Reconcile(oldPrice, newPrice money.Amount) Reconciliation {
	delta := newPrice.Sub(oldPrice)

	switch delta.Sign() {
	case 1:
		return Reconciliation{
			Delta:  delta,
			Kind:   ReconciliationPay,
			Notice: fmt.Sprintf("You need to pay %s%s to book and confirm seats", currencySymbol, delta),
			Label:  fmt.Sprintf("I confirm that I will pay the additional amount of %s%s", currencySymbol, delta),
		}
	case -1:
		return Reconciliation{
			Delta: delta,
			Kind:  ReconciliationRefund,
			Notice: fmt.Sprintf("The difference amount of %s%s will be added to your account within %s",
				currencySymbol, delta.Abs(), refundProcessingPeriod),
			Label: "I confirm the transfer and understand the refund process",
		}
	default:
		return Reconciliation{Delta: delta, Kind: ReconciliationNone}
	}
}

func (r Reconciliation) NeedsAcknowledgement() bool {
	return r.Kind != ReconciliationNone
}

type Flow struct {
	ID           string                `json:"id"`
	UserID       int64                 `json:"user_id"`
	State        State                 `json:"state"`
	Booking      *bookingModel.Booking `json:"booking,omitempty"`
	SourceBus    *busModel.Bus         `json:"source_bus,omitempty"`
	Candidates   []busModel.Bus        `json:"candidates"`
	Message      string                `json:"message,omitempty"`
	TargetBus    *busModel.Bus         `json:"target_bus,omitempty"`
	Seats        []seatModel.Seat      `json:"seats"`
	TargetSeat   *seatModel.Seat       `json:"target_seat,omitempty"`
	Acknowledged bool                  `json:"acknowledged"`
	Result       string                `json:"result,omitempty"`
	ResetAt      *time.Time            `json:"reset_at,omitempty"`
}

func New(id string, sess session.Session) *Flow {
	f := &Flow{ID: id, UserID: sess.UserID()}
	f.reset()

	return f
}

func (f *Flow) reset() {
	*f = Flow{
		ID:         f.ID,
		UserID:     f.UserID,
		State:      StateSelectingBooking,
		Candidates: []busModel.Bus{},
		Seats:      []seatModel.Seat{},
	}
}

func (f *Flow) expect(states ...State) error {
	for _, state := range states {
		if f.State == state {
			return nil
		}
	}

	return failure.Conflict(fmt.Sprintf("transfer is %s", f.State)) //nolint:wrapcheck
}

// ChooseBooking accepts only a CONFIRMED booking of the flow's user. An empty candidate list is
// a valid outcome and is reported through Message.
func (f *Flow) ChooseBooking(booking bookingModel.Booking, source busModel.Bus, candidates []busModel.Bus) error {
	if err := f.expect(StateSelectingBooking, StateSelectingBus); err != nil {
		return err
	}

	if booking.UserID != f.UserID || !booking.Confirmed() {
		return failure.Validation(messageNotOwnBooking) //nolint:wrapcheck
	}

	f.reset()
	f.State = StateSelectingBus
	f.Booking = &booking
	f.SourceBus = &source
	f.Candidates = append(f.Candidates, candidates...)

	if len(candidates) == 0 {
		f.Message = NoCandidatesMessage
	}

	return nil
}

// ChooseBus takes the available seats of the chosen candidate.
func (f *Flow) ChooseBus(busID int64, seats []seatModel.Seat) error {
	if err := f.expect(StateSelectingBus); err != nil {
		return err
	}

	for i := range f.Candidates {
		if f.Candidates[i].ID != busID {
			continue
		}

		target := f.Candidates[i]
		f.TargetBus = &target
		f.Seats = append([]seatModel.Seat{}, seats...)
		f.State = StateSelectingSeat

		return nil
	}

	return failure.Validation(messageUnknownBus) //nolint:wrapcheck
}

// ChooseSeat takes one seat of the target bus. A priority seat is only taken when acknowledged,
// otherwise the outcome carries the eligibility prompt and the flow stays put.
func (f *Flow) ChooseSeat(seatNumber string, acknowledged bool) (seatmap.Outcome, error) {
	if err := f.expect(StateSelectingSeat, StateConfirming); err != nil {
		return seatmap.Outcome{}, err
	}

	var seat *seatModel.Seat

	for i := range f.Seats {
		if f.Seats[i].SeatNumber == seatNumber {
			seat = &f.Seats[i]

			break
		}
	}

	if seat == nil {
		return seatmap.Outcome{}, failure.Validation(messageUnknownSeat) //nolint:wrapcheck
	}

	if !seat.Status.Available() {
		return seatmap.Outcome{}, failure.Validation(messageSeatBooked) //nolint:wrapcheck
	}

	if seat.Type.Priority() && !acknowledged {
		return seatmap.Outcome{
			Kind:       seatmap.OutcomeConfirmationRequired,
			SeatNumber: seatNumber,
			Prompt:     seatmap.EligibilityPrompt(seat.Type),
		}, nil
	}

	chosen := *seat
	f.TargetSeat = &chosen
	f.Acknowledged = false
	f.State = StateConfirming

	return seatmap.Outcome{Kind: seatmap.OutcomeToggled, SeatNumber: seatNumber, Selected: true}, nil
}

// Back from SelectingSeat or Confirming discards the seat and the bus; from SelectingBus it drops the booking.
func (f *Flow) Back() error {
	switch f.State {
	case StateSelectingSeat, StateConfirming:
		f.TargetBus = nil
		f.TargetSeat = nil
		f.Seats = []seatModel.Seat{}
		f.Acknowledged = false
		f.State = StateSelectingBus
	case StateSelectingBus:
		f.reset()
	default:
		return f.expect(StateSelectingBus, StateSelectingSeat, StateConfirming)
	}

	return nil
}

// Reconciliation is only known once both buses are.
func (f *Flow) Reconciliation() *Reconciliation {
	if f.SourceBus == nil || f.TargetBus == nil {
		return nil
	}

	r := Reconcile(f.SourceBus.Price, f.TargetBus.Price)

	return &r
}

func (f *Flow) Acknowledge(acknowledged bool) error {
	if err := f.expect(StateConfirming); err != nil {
		return err
	}

	f.Acknowledged = acknowledged

	return nil
}

// Request is the transfer to submit; it fails while the applicable acknowledgement is missing.
func (f *Flow) Request() (busapi.TransferRequest, error) {
	if err := f.expect(StateConfirming); err != nil {
		return busapi.TransferRequest{}, err
	}

	if f.TargetSeat == nil {
		return busapi.TransferRequest{}, failure.Validation(messageNoSeatSelected) //nolint:wrapcheck
	}

	if r := f.Reconciliation(); r.NeedsAcknowledgement() && !f.Acknowledged {
		return busapi.TransferRequest{}, failure.Validation(MessageNotAcknowledged) //nolint:wrapcheck
	}

	return busapi.TransferRequest{
		BookingID: f.Booking.ID,
		NewBusID:  f.TargetBus.ID,
		NewSeatID: f.TargetSeat.ID,
	}, nil
}

func (f *Flow) MarkSubmitted(result string, now time.Time, resetDelay time.Duration) {
	resetAt := now.Add(resetDelay)

	f.State = StateSubmitted
	f.Result = result
	f.ResetAt = &resetAt
}

// Refresh returns a submitted flow to SelectingBooking once now reaches its reset time.
func (f *Flow) Refresh(now time.Time) bool {
	if f.State != StateSubmitted || f.ResetAt == nil || now.Before(*f.ResetAt) {
		return false
	}

	f.reset()

	return true
}
