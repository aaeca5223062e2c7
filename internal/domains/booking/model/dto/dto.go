package dto

import (
	"fmt"
	"strings"
	"time"

	"busbooking/internal/domains/booking/draft"
	"busbooking/internal/domains/booking/model"
	busModel "busbooking/internal/domains/bus/model"
	receiptModel "busbooking/internal/domains/receipt/model"
	seatDto "busbooking/internal/domains/seat/model/dto"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/money"
	"busbooking/shared/timezone"
)

// datetime-local inputs omit the seconds
var bookingDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type StartDraftRequest struct {
	BusID       int64  `json:"bus_id"       validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"omitempty"`
}

// NormalizedBookingDate defaults to now and always renders the LocalDateTime the booking endpoint expects.
func (r StartDraftRequest) NormalizedBookingDate() (string, error) {
	value := strings.TrimSpace(r.BookingDate)
	if value == "" {
		return timezone.FormatDateTime(timezone.Now()), nil
	}

	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, value, timezone.GetLocation()); err == nil {
			return timezone.FormatDateTime(t), nil
		}
	}

	return "", fmt.Errorf("booking_date %q is not a date and time", value)
}

type ToggleSeatRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

type PassengerRequest struct {
	SeatNumber  string `json:"seat_number"  validate:"required,seatnumber"`
	Name        string `json:"name"         validate:"required,max=100"`
	Age         int    `json:"age"          validate:"required,gt=0,lte=120"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Address     string `json:"address"      validate:"required,max=255"`
}

type PaymentRequest struct {
	Passengers []PassengerRequest `json:"passengers" validate:"omitempty,dive"`
}

func (r PaymentRequest) ToModels() []model.Passenger {
	passengers := make([]model.Passenger, len(r.Passengers))
	for i, p := range r.Passengers {
		passengers[i] = model.Passenger{
			SeatNumber:  strings.TrimSpace(p.SeatNumber),
			Name:        strings.TrimSpace(p.Name),
			Age:         p.Age,
			PhoneNumber: strings.TrimSpace(p.PhoneNumber),
			Address:     strings.TrimSpace(p.Address),
		}
	}

	return passengers
}

type DraftResponse struct {
	ID          string                 `json:"id"`
	BusID       int64                  `json:"bus_id"`
	BookingDate string                 `json:"booking_date"`
	Bus         busModel.Bus           `json:"bus"`
	SeatNumbers []string               `json:"seat_numbers"`
	Amount      money.Amount           `json:"amount"`
	Layout      seatDto.LayoutResponse `json:"layout"`
}

func (r *DraftResponse) FromDraft(d *draft.Draft, m *seatmap.Map) {
	r.ID = d.ID
	r.BusID = d.BusID
	r.BookingDate = d.BookingDate
	r.Bus = d.Bus
	r.SeatNumbers = d.SeatNumbers
	r.Amount = d.Amount

	counts := d.Counts
	r.Layout.FromMap(d.BusID, m)
	r.Layout.Counts = &counts
}

type ToggleResponse struct {
	Outcome seatmap.Outcome `json:"outcome"`
	DraftResponse
}

type CheckoutResponse struct {
	ID              string       `json:"id"`
	Bus             busModel.Bus `json:"bus"`
	BookingDate     string       `json:"booking_date"`
	SeatNumbers     []string     `json:"seat_numbers"`
	Amount          money.Amount `json:"amount"`
	AdditionalSeats []string     `json:"additional_seats"`
}

func (r *CheckoutResponse) FromDraft(d *draft.Draft) {
	r.ID = d.ID
	r.Bus = d.Bus
	r.BookingDate = d.BookingDate
	r.SeatNumbers = d.SeatNumbers
	r.Amount = d.Amount
	r.AdditionalSeats = d.AdditionalSeats()
}

type PaymentResponse struct {
	Message         string                  `json:"message"`
	Bookings        []model.Booking         `json:"bookings"`
	Receipts        []receiptModel.Document `json:"receipts"`
	RedirectTo      string                  `json:"redirect_to"`
	RedirectAfterMs int64                   `json:"redirect_after_ms"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
