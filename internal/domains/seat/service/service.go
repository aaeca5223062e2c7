package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"busbooking/config"
	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	"busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/model/dto"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/constant"
	"busbooking/shared/failure"

	"github.com/rs/zerolog/log"
)

type Seat interface {
	GetAll(ctx context.Context, busID int64) ([]model.Seat, error)
	GetAvailable(ctx context.Context, busID int64, seatType string) ([]model.Seat, error)
	Count(ctx context.Context, busID int64) (model.Counts, error)
	Layout(ctx context.Context, busID int64) (dto.LayoutResponse, error)
}

type serviceImpl struct {
	api  busapi.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(api busapi.Client, cfg *config.Config, otel otel.Otel) Seat {
	return &serviceImpl{
		api:  api,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, busID int64) (res []model.Seat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seat.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	seats, err := s.api.ListSeats(ctx, busID)
	if err != nil {
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to list seats")

		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	return model.FromAPIs(seats), nil
}

// GetAvailable narrows to one seat type when seatType is set; ELDER and ELDERLY are accepted alike.
func (s *serviceImpl) GetAvailable(ctx context.Context, busID int64, seatType string) (res []model.Seat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seat.GetAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	var seats []busapi.Seat

	if seatType == constant.Empty {
		seats, err = s.api.ListAvailableSeats(ctx, busID)
	} else {
		seats, err = s.api.ListAvailableSeatsByType(ctx, busID, model.ParseType(seatType).Wire())
	}

	if err != nil {
		log.Error().Err(err).Int64("bus_id", busID).Str("seat_type", seatType).Msg("failed to list available seats")

		return nil, fmt.Errorf("failed to list available seats: %w", err)
	}

	return model.FromAPIs(seats), nil
}

func (s *serviceImpl) Count(ctx context.Context, busID int64) (res model.Counts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seat.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.api.SeatCounts(ctx, busID)
	if err != nil {
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to count seats")

		return res, fmt.Errorf("failed to count seats: %w", err)
	}

	return model.CountsFromAPI(counts), nil
}

func (s *serviceImpl) Layout(ctx context.Context, busID int64) (res dto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seat.Layout")
	defer scope.End()
	defer scope.TraceIfError(err)

	seats, err := s.GetAll(ctx, busID)
	if err != nil {
		return res, err
	}

	counts, err := s.Count(ctx, busID)
	if err != nil {
		return res, err
	}

	m, err := BuildMap(seats, nil, s.cfg.App.Seat.RowWidth, nil)
	if err != nil {
		return res, err
	}

	res.FromMap(busID, m)
	res.Counts = &counts

	return res, nil
}

// BuildMap reports malformed seat numbers from the server as validation failures.
func BuildMap(seats []model.Seat, selected []string, rowWidth int, onToggle seatmap.ToggleFunc) (*seatmap.Map, error) {
	m, err := seatmap.Build(seats, selected, rowWidth, onToggle)
	if err != nil {
		var parseErr *seatmap.ParseError
		if errors.As(err, &parseErr) {
			log.Error().Err(err).Str("seat_number", parseErr.SeatNumber).Msg("seat list violates seat number format")

			return nil, failure.Validation(parseErr.Error()) //nolint:wrapcheck
		}

		return nil, fmt.Errorf("failed to build seat map: %w", err)
	}

	return m, nil
}
