package dto

import (
	"net/http"
	"strings"

	"busbooking/infras/busapi"
	"busbooking/internal/domains/bus/model"
	"busbooking/shared/money"
	"busbooking/shared/timezone"
)

type BusRequest struct {
	Name           string       `json:"name"            validate:"required,max=100"`
	Route          string       `json:"route"           validate:"required,max=200"`
	DepartureDate  string       `json:"departure_date"  validate:"required,date"`
	DepartureTime  string       `json:"departure_time"  validate:"required,clock"`
	ArrivalTime    string       `json:"arrival_time"    validate:"required,clock"`
	TotalSeats     int          `json:"total_seats"     validate:"required,gt=0"`
	AvailableSeats int          `json:"available_seats" validate:"gte=0,ltefield=TotalSeats"`
	Price          money.Amount `json:"price"           validate:"gt=0"`
}

// ToAPI normalizes the date to dd-mm-yyyy and the times to HH:mm before they go upstream.
func (r *BusRequest) ToAPI() (busapi.BusRequest, error) {
	date, err := timezone.NormalizeDate(r.DepartureDate)
	if err != nil {
		return busapi.BusRequest{}, err
	}

	departure, err := timezone.NormalizeTime(r.DepartureTime)
	if err != nil {
		return busapi.BusRequest{}, err
	}

	arrival, err := timezone.NormalizeTime(r.ArrivalTime)
	if err != nil {
		return busapi.BusRequest{}, err
	}

	return busapi.BusRequest{
		Name:           strings.TrimSpace(r.Name),
		Route:          strings.TrimSpace(r.Route),
		DepartureDate:  date,
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		AvailableSeats: r.AvailableSeats,
		TotalSeats:     r.TotalSeats,
		Price:          r.Price,
	}, nil
}

// BusFilter narrows the catalogue in memory. Zero values do not filter.
type BusFilter struct {
	Name          string
	Route         string
	DepartureDate string
	MinPrice      money.Amount
	MaxPrice      money.Amount
}

func (f BusFilter) Match(bus model.Bus) bool {
	if f.Name != "" && !containsFold(bus.Name, f.Name) {
		return false
	}

	if f.Route != "" && !containsFold(bus.Route, f.Route) {
		return false
	}

	if f.DepartureDate != "" && bus.DepartureDate != timezone.DisplayDate(f.DepartureDate) {
		return false
	}

	if f.MinPrice > 0 && bus.Price < f.MinPrice {
		return false
	}

	if f.MaxPrice > 0 && bus.Price > f.MaxPrice {
		return false
	}

	return true
}

const (
	queryName          = "name"
	queryRoute         = "route"
	queryDepartureDate = "departure_date"
	queryMinPrice      = "min_price"
	queryMaxPrice      = "max_price"
)

// FromRequest reads the catalogue filter from the query string, ignoring unparsable prices.
func (f *BusFilter) FromRequest(request *http.Request) {
	query := request.URL.Query()

	f.Name = strings.TrimSpace(query.Get(queryName))
	f.Route = strings.TrimSpace(query.Get(queryRoute))
	f.DepartureDate = strings.TrimSpace(query.Get(queryDepartureDate))

	if price, err := money.Parse(query.Get(queryMinPrice)); err == nil {
		f.MinPrice = price
	}

	if price, err := money.Parse(query.Get(queryMaxPrice)); err == nil {
		f.MaxPrice = price
	}
}

func (f BusFilter) Empty() bool {
	return f == BusFilter{}
}

func containsFold(value, part string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(part)))
}

type TransferCandidatesResponse struct {
	Source     model.Bus   `json:"source"`
	Candidates []model.Bus `json:"candidates"`
	Message    string      `json:"message,omitempty"`
}
