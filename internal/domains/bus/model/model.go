package model

import (
	"busbooking/infras/busapi"
	"busbooking/shared/money"
	"busbooking/shared/timezone"
)

const EntityName = "bus"

// Bus is the catalogue entry as the booking flows see it. DepartureDate is always dd-mm-yyyy.
type Bus struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Route          string       `json:"route"`
	DepartureDate  string       `json:"departure_date"`
	DepartureTime  string       `json:"departure_time"`
	ArrivalTime    string       `json:"arrival_time"`
	AvailableSeats int          `json:"available_seats"`
	TotalSeats     int          `json:"total_seats"`
	Price          money.Amount `json:"price"`
}

// FromAPI accepts either dd-mm-yyyy or ISO-8601 departure dates from the server.
func FromAPI(bus busapi.Bus) Bus {
	return Bus{
		ID:             bus.ID,
		Name:           bus.Name,
		Route:          bus.Route,
		DepartureDate:  timezone.DisplayDate(bus.DepartureDate),
		DepartureTime:  displayTime(bus.DepartureTime),
		ArrivalTime:    displayTime(bus.ArrivalTime),
		AvailableSeats: bus.AvailableSeats,
		TotalSeats:     bus.TotalSeats,
		Price:          bus.Price,
	}
}

func FromAPIs(buses []busapi.Bus) []Bus {
	res := make([]Bus, len(buses))
	for i, bus := range buses {
		res[i] = FromAPI(bus)
	}

	return res
}

// IsTransferCandidateFor reports whether b runs the same route as source under a different id.
func (b Bus) IsTransferCandidateFor(source Bus) bool {
	return b.Route == source.Route && b.ID != source.ID
}

func displayTime(value string) string {
	normalized, err := timezone.NormalizeTime(value)
	if err != nil {
		return value
	}

	return normalized
}
