package busapi

import "busbooking/shared/money"

// Bus mirrors the bus resource of the bus management API.
type Bus struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Route          string       `json:"route"`
	DepartureDate  string       `json:"departureDate"`
	DepartureTime  string       `json:"departureTime"`
	ArrivalTime    string       `json:"arrivalTime"`
	AvailableSeats int          `json:"availableSeats"`
	TotalSeats     int          `json:"totalSeats"`
	Price          money.Amount `json:"price"`
}

type BusRequest struct {
	Name           string       `json:"name"`
	Route          string       `json:"route"`
	DepartureDate  string       `json:"departureDate"`
	DepartureTime  string       `json:"departureTime"`
	ArrivalTime    string       `json:"arrivalTime"`
	AvailableSeats int          `json:"availableSeats"`
	TotalSeats     int          `json:"totalSeats"`
	Price          money.Amount `json:"price"`
}

// Seat types as spelled on the wire.
const (
	SeatTypeRegular  = "REGULAR"
	SeatTypeElder    = "ELDER"
	SeatTypePregnant = "PREGNANT"
)

type Seat struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seatNumber"`
	SeatType   string `json:"seatType"`
	Status     string `json:"status"`
	BusID      int64  `json:"busId"`
}

// Passenger and BusSummary ride along with a booking so receipts can name them.
type Passenger struct {
	Name string `json:"name"`
}

type BusSummary struct {
	Name  string `json:"name"`
	Route string `json:"route"`
}

type BookingRequest struct {
	UserID      int64        `json:"userId"`
	BusID       int64        `json:"busId"`
	BookingDate string       `json:"bookingDate"`
	SeatNumber  string       `json:"seatNumber"`
	Amount      money.Amount `json:"amount"`
	Status      string       `json:"status"`
	User        *Passenger   `json:"user,omitempty"`
	Bus         *BusSummary  `json:"bus,omitempty"`
}

type Booking struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	BusID       int64        `json:"busId"`
	BookingDate string       `json:"bookingDate"`
	SeatNumber  string       `json:"seatNumber"`
	Amount      money.Amount `json:"amount"`
	Status      string       `json:"status"`
}

type TransferRequest struct {
	BookingID int64 `json:"bookingId"`
	NewBusID  int64 `json:"newBusId"`
	NewSeatID int64 `json:"newSeatId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Role       string `json:"role"`
	IsPregnant bool   `json:"isPregnant"`
}

type UserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Role       string `json:"role"`
	Password   string `json:"password"`
	IsPregnant bool   `json:"isPregnant"`
}

type PriorityInfo struct {
	UserID                   int64  `json:"userId"`
	ElderlyPriorityEligible  bool   `json:"elderlyPriorityEligible"`
	PregnantPriorityEligible bool   `json:"pregnantPriorityEligible"`
	RecommendedSeatType      string `json:"recommendedSeatType"`
}
