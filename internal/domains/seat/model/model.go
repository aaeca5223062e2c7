package model

import (
	"strings"

	"busbooking/infras/busapi"
)

const EntityName = "seat"

type Type string

const (
	TypeRegular  Type = "REGULAR"
	TypeElderly  Type = "ELDERLY"
	TypePregnant Type = "PREGNANT"
)

// ParseType maps the server spelling, where ELDER and ELDERLY name the same seat type.
func ParseType(value string) Type {
	switch t := strings.ToUpper(strings.TrimSpace(value)); t {
	case busapi.SeatTypeElder, string(TypeElderly):
		return TypeElderly
	case "":
		return TypeRegular
	default:
		return Type(t)
	}
}

// Priority is true for every seat type other than REGULAR.
func (t Type) Priority() bool {
	return t != TypeRegular
}

// Wire is the spelling the bus management API expects in paths.
func (t Type) Wire() string {
	if t == TypeElderly {
		return busapi.SeatTypeElder
	}

	return string(t)
}

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
)

func ParseStatus(value string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(value)))
}

func (s Status) Available() bool {
	return s == StatusAvailable
}

// CanTransition allows AVAILABLE to BOOKED and back, nothing else.
func (s Status) CanTransition(to Status) bool {
	return (s == StatusAvailable && to == StatusBooked) || (s == StatusBooked && to == StatusAvailable)
}

type Seat struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seat_number"`
	Type       Type   `json:"seat_type"`
	Status     Status `json:"status"`
	BusID      int64  `json:"bus_id"`
}

func FromAPI(seat busapi.Seat) Seat {
	return Seat{
		ID:         seat.ID,
		SeatNumber: strings.TrimSpace(seat.SeatNumber),
		Type:       ParseType(seat.SeatType),
		Status:     ParseStatus(seat.Status),
		BusID:      seat.BusID,
	}
}

func FromAPIs(seats []busapi.Seat) []Seat {
	res := make([]Seat, len(seats))
	for i, seat := range seats {
		res[i] = FromAPI(seat)
	}

	return res
}

type Counts struct {
	Regular  int `json:"regular"`
	Elderly  int `json:"elderly"`
	Pregnant int `json:"pregnant"`
	Total    int `json:"total"`
}

// CountsFromAPI folds the per-type map returned by the server; unknown keys only add to Total.
func CountsFromAPI(raw map[string]int) Counts {
	var counts Counts

	for key, value := range raw {
		switch ParseType(key) {
		case TypeRegular:
			counts.Regular += value
		case TypeElderly:
			counts.Elderly += value
		case TypePregnant:
			counts.Pregnant += value
		}

		counts.Total += value
	}

	return counts
}
