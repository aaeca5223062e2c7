package model

import (
	"fmt"
	"regexp"
	"strconv"

	"busbooking/shared/money"
)

const notAvailable = "N/A"

var fileNamePattern = regexp.MustCompile(`^booking-([0-9]+)\.pdf$`)

// Receipt is the confirmation issued for one booked seat.
type Receipt struct {
	BookingID     int64
	PassengerName string
	BusName       string
	Route         string
	SeatNumber    string
	BookingDate   string
	Amount        money.Amount
	Status        string
}

type Document struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

func FileName(bookingID int64) string {
	return fmt.Sprintf("booking-%d.pdf", bookingID)
}

// ParseFileName accepts only receipt names and returns the booking id they carry.
func ParseFileName(name string) (int64, bool) {
	match := fileNamePattern.FindStringSubmatch(name)
	if match == nil {
		return 0, false
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func (r Receipt) FileName() string {
	return FileName(r.BookingID)
}

// Rows are the detail lines of the document, with N/A for anything unknown.
func (r Receipt) Rows(formatDate func(string) string) [][2]string {
	amount := notAvailable
	if r.Amount != 0 {
		amount = "Rs. " + r.Amount.String()
	}

	id := notAvailable
	if r.BookingID != 0 {
		id = strconv.FormatInt(r.BookingID, 10)
	}

	date := notAvailable
	if r.BookingDate != "" {
		date = formatDate(r.BookingDate)
	}

	return [][2]string{
		{"Booking ID", id},
		{"Passenger Name", orNA(r.PassengerName)},
		{"Bus Name", orNA(r.BusName)},
		{"Route", orNA(r.Route)},
		{"Seat Number", orNA(r.SeatNumber)},
		{"Booking Date", date},
		{"Amount", amount},
		{"Status", orNA(r.Status)},
	}
}

func orNA(value string) string {
	if value == "" {
		return notAvailable
	}

	return value
}
