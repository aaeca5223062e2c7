package dto

import (
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/internal/domains/transfer/model"
)

type ChooseBookingRequest struct {
	BookingID int64 `json:"booking_id" validate:"required,gt=0"`
}

type ChooseBusRequest struct {
	BusID int64 `json:"bus_id" validate:"required,gt=0"`
}

type ChooseSeatRequest struct {
	SeatNumber   string `json:"seat_number"  validate:"required,seatnumber"`
	Acknowledged bool   `json:"acknowledged"`
}

type AcknowledgeRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

type FlowResponse struct {
	model.Flow
	Reconciliation *model.Reconciliation `json:"reconciliation,omitempty"`
	Outcome        *seatmap.Outcome      `json:"outcome,omitempty"`
}

func (r *FlowResponse) FromFlow(f *model.Flow) {
	r.Flow = *f
	r.Reconciliation = f.Reconciliation()
}
