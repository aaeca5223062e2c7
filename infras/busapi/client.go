package busapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"busbooking/config"
	"busbooking/infras/otel"
	"busbooking/shared/constant"
	"busbooking/shared/failure"

	"github.com/rs/zerolog/log"
)

const maxErrorBody = 4 << 10

// Client is the typed gateway to the bus management API.
type Client interface {
	ListBuses(ctx context.Context) ([]Bus, error)
	SearchBuses(ctx context.Context, name, route string) ([]Bus, error)
	GetBus(ctx context.Context, id int64) (Bus, error)
	CreateBus(ctx context.Context, req BusRequest) (Bus, error)
	UpdateBus(ctx context.Context, id int64, req BusRequest) (Bus, error)
	DeleteBus(ctx context.Context, id int64) error

	ListSeats(ctx context.Context, busID int64) ([]Seat, error)
	ListAvailableSeats(ctx context.Context, busID int64) ([]Seat, error)
	ListAvailableSeatsByType(ctx context.Context, busID int64, seatType string) ([]Seat, error)
	SeatCounts(ctx context.Context, busID int64) (map[string]int, error)

	CreateBooking(ctx context.Context, req BookingRequest) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]Booking, error)
	CancelBooking(ctx context.Context, id int64) (string, error)
	TransferSeat(ctx context.Context, req TransferRequest) (string, error)

	Login(ctx context.Context, req LoginRequest) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	AddUser(ctx context.Context, req UserRequest) (string, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	PriorityInfo(ctx context.Context, userID int64) (PriorityInfo, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return NewWithHTTPClient(cfg.Upstream.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
	}, otel)
}

// NewWithHTTPClient is used when the caller controls transport, e.g. against an httptest server.
func NewWithHTTPClient(baseURL string, httpClient *http.Client, otel otel.Otel) Client {
	log.Info().Str("base_url", baseURL).Msg("Bus management API client initialized")

	return &clientImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		otel:       otel,
	}
}

func (c *clientImpl) ListBuses(ctx context.Context) (res []Bus, err error) {
	err = c.do(ctx, "list buses", http.MethodGet, "/bus", nil, &res)

	return res, err
}

func (c *clientImpl) SearchBuses(ctx context.Context, name, route string) (res []Bus, err error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	if route != "" {
		query.Set("route", route)
	}

	path := "/bus/search"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	err = c.do(ctx, "search buses", http.MethodGet, path, nil, &res)

	return res, err
}

func (c *clientImpl) GetBus(ctx context.Context, id int64) (res Bus, err error) {
	err = c.do(ctx, "get bus", http.MethodGet, "/bus/"+strconv.FormatInt(id, 10), nil, &res)

	return res, err
}

func (c *clientImpl) CreateBus(ctx context.Context, req BusRequest) (res Bus, err error) {
	err = c.do(ctx, "create bus", http.MethodPost, "/bus", req, &res)

	return res, err
}

func (c *clientImpl) UpdateBus(ctx context.Context, id int64, req BusRequest) (res Bus, err error) {
	err = c.do(ctx, "update bus", http.MethodPut, "/bus/"+strconv.FormatInt(id, 10), req, &res)

	return res, err
}

func (c *clientImpl) DeleteBus(ctx context.Context, id int64) error {
	return c.do(ctx, "delete bus", http.MethodDelete, "/bus/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *clientImpl) ListSeats(ctx context.Context, busID int64) (res []Seat, err error) {
	err = c.do(ctx, "list seats", http.MethodGet, fmt.Sprintf("/seat/bus/%d", busID), nil, &res)

	return res, err
}

func (c *clientImpl) ListAvailableSeats(ctx context.Context, busID int64) (res []Seat, err error) {
	err = c.do(ctx, "list available seats", http.MethodGet, fmt.Sprintf("/seat/bus/%d/available", busID), nil, &res)

	return res, err
}

func (c *clientImpl) ListAvailableSeatsByType(ctx context.Context, busID int64, seatType string) (res []Seat, err error) {
	path := fmt.Sprintf("/seat/bus/%d/available/%s", busID, url.PathEscape(seatType))
	err = c.do(ctx, "list available seats by type", http.MethodGet, path, nil, &res)

	return res, err
}

func (c *clientImpl) SeatCounts(ctx context.Context, busID int64) (res map[string]int, err error) {
	err = c.do(ctx, "count seats", http.MethodGet, fmt.Sprintf("/seat/bus/%d/count", busID), nil, &res)

	return res, err
}

func (c *clientImpl) CreateBooking(ctx context.Context, req BookingRequest) (res Booking, err error) {
	err = c.do(ctx, "create booking", http.MethodPost, "/booking", req, &res)

	return res, err
}

func (c *clientImpl) ListBookings(ctx context.Context) (res []Booking, err error) {
	err = c.do(ctx, "list bookings", http.MethodGet, "/booking", nil, &res)

	return res, err
}

func (c *clientImpl) ListUserBookings(ctx context.Context, userID int64) (res []Booking, err error) {
	err = c.do(ctx, "list user bookings", http.MethodGet, fmt.Sprintf("/booking/user/%d", userID), nil, &res)

	return res, err
}

func (c *clientImpl) CancelBooking(ctx context.Context, id int64) (res string, err error) {
	err = c.do(ctx, "cancel booking", http.MethodPut, fmt.Sprintf("/booking/%d/cancel", id), nil, &res)

	return res, err
}

func (c *clientImpl) TransferSeat(ctx context.Context, req TransferRequest) (res string, err error) {
	err = c.do(ctx, "transfer seat", http.MethodPost, "/booking/transfer", req, &res)

	return res, err
}

func (c *clientImpl) Login(ctx context.Context, req LoginRequest) (res User, err error) {
	err = c.do(ctx, "login", http.MethodPost, "/users/login", req, &res)

	return res, err
}

func (c *clientImpl) ListUsers(ctx context.Context) (res []User, err error) {
	err = c.do(ctx, "list users", http.MethodGet, "/users", nil, &res)

	return res, err
}

func (c *clientImpl) AddUser(ctx context.Context, req UserRequest) (res string, err error) {
	err = c.do(ctx, "add user", http.MethodPost, "/users", req, &res)

	return res, err
}

func (c *clientImpl) GetUserByEmail(ctx context.Context, email string) (res User, err error) {
	err = c.do(ctx, "get user", http.MethodGet, "/users/"+url.PathEscape(email), nil, &res)

	return res, err
}

func (c *clientImpl) PriorityInfo(ctx context.Context, userID int64) (res PriorityInfo, err error) {
	err = c.do(ctx, "get priority info", http.MethodGet, fmt.Sprintf("/users/%d/priority", userID), nil, &res)

	return res, err
}

// do issues one call. out may be nil, a *string for plain-text replies or any JSON target.
func (c *clientImpl) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+operation)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.path":   path,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}

	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	started := time.Now()

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Str("operation", operation).Msg("upstream call abandoned by caller")
		} else {
			log.Error().Err(err).Str("operation", operation).Msg("upstream call failed")
		}

		return failure.Network(operation, 0, err.Error()) //nolint:wrapcheck
	}
	defer response.Body.Close()

	scope.SetAttribute("http.status_code", response.StatusCode)

	log.Debug().
		Str("operation", operation).
		Str("method", method).
		Str("path", path).
		Int("status", response.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("upstream call completed")

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return statusFailure(operation, response)
	}

	return decode(operation, response.Body, out)
}

func statusFailure(operation string, response *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	detail := strings.TrimSpace(string(raw))

	log.Warn().Str("operation", operation).Int("status", response.StatusCode).Str("body", detail).Msg("upstream returned an error")

	switch response.StatusCode {
	case http.StatusUnauthorized:
		if detail == "" {
			detail = "invalid email or password"
		}

		return failure.Unauthorized(detail) //nolint:wrapcheck
	case http.StatusNotFound:
		if detail == "" {
			detail = operation + ": not found"
		}

		return failure.NotFound(detail) //nolint:wrapcheck
	default:
		return failure.Network(operation, response.StatusCode, detail) //nolint:wrapcheck
	}
}

func decode(operation string, body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)

		return nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return failure.Network(operation, 0, err.Error()) //nolint:wrapcheck
	}

	if text, ok := out.(*string); ok {
		*text = strings.TrimSpace(string(raw))

		return nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return failure.Network(operation, 0, "empty response body") //nolint:wrapcheck
	}

	if err = json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to decode upstream response")

		return failure.Network(operation, 0, "unexpected response body") //nolint:wrapcheck
	}

	return nil
}
