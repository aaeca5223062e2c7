package seatmap

type OutcomeKind int

const (
	OutcomeIgnored OutcomeKind = iota
	OutcomeToggled
	OutcomeConfirmationRequired
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeToggled:
		return "toggled"
	case OutcomeConfirmationRequired:
		return "confirmation_required"
	default:
		return "ignored"
	}
}

func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome reports what a click did. Prompt is set only when a confirmation is required.
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	SeatNumber string      `json:"seat_number"`
	Selected   bool        `json:"selected"`
	Prompt     string      `json:"prompt,omitempty"`
}
