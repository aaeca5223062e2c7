package dto

import (
	"busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/seatmap"
)

type LayoutResponse struct {
	BusID    int64          `json:"bus_id"`
	RowWidth int            `json:"row_width"`
	Rows     []seatmap.Row  `json:"rows"`
	Selected []string       `json:"selected"`
	Counts   *model.Counts  `json:"counts,omitempty"`
	Pending  *PendingPrompt `json:"pending,omitempty"`
}

// PendingPrompt is the eligibility confirmation the browser must show before the seat is taken.
type PendingPrompt struct {
	SeatNumber string `json:"seat_number"`
	Prompt     string `json:"prompt"`
}

func (r *LayoutResponse) FromMap(busID int64, m *seatmap.Map) {
	r.BusID = busID
	r.RowWidth = m.RowWidth()
	r.Rows = m.Rows()
	r.Selected = m.Selection().Numbers()

	if pending := m.Pending(); pending != "" {
		cell, _ := m.Cell(pending)
		r.Pending = &PendingPrompt{SeatNumber: pending, Prompt: seatmap.EligibilityPrompt(cell.Type)}
	}
}

type SeatsResponse struct {
	BusID int64        `json:"bus_id"`
	Seats []model.Seat `json:"seats"`
}
