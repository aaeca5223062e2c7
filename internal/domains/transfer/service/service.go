package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"busbooking/config"
	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	bookingModel "busbooking/internal/domains/booking/model"
	busService "busbooking/internal/domains/bus/service"
	eventModel "busbooking/internal/domains/event/model"
	eventService "busbooking/internal/domains/event/service"
	receiptModel "busbooking/internal/domains/receipt/model"
	receiptService "busbooking/internal/domains/receipt/service"
	"busbooking/internal/domains/seat/seatmap"
	seatService "busbooking/internal/domains/seat/service"
	"busbooking/internal/domains/transfer/model"
	"busbooking/internal/domains/transfer/model/dto"
	"busbooking/shared"
	"busbooking/shared/cache"
	"busbooking/shared/constant"
	"busbooking/shared/failure"
	"busbooking/shared/session"
	"busbooking/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	flowNotFound    = "transfer not found"
	bookingNotFound = "booking not found"
)

// Transfer moves one booking to a seat on another bus of the same route. A flow is only
// saved after the step that changed it succeeded, so a failed call leaves it where it was.
type Transfer interface {
	Start(ctx context.Context, sess session.Session) (dto.FlowResponse, error)
	Get(ctx context.Context, sess session.Session, flowID string) (dto.FlowResponse, error)
	ChooseBooking(ctx context.Context, sess session.Session, flowID string, req dto.ChooseBookingRequest) (dto.FlowResponse, error)
	ChooseBus(ctx context.Context, sess session.Session, flowID string, req dto.ChooseBusRequest) (dto.FlowResponse, error)
	ChooseSeat(ctx context.Context, sess session.Session, flowID string, req dto.ChooseSeatRequest) (dto.FlowResponse, error)
	Back(ctx context.Context, sess session.Session, flowID string) (dto.FlowResponse, error)
	Acknowledge(ctx context.Context, sess session.Session, flowID string, req dto.AcknowledgeRequest) (dto.FlowResponse, error)
	Submit(ctx context.Context, sess session.Session, flowID string) (dto.FlowResponse, error)
}

type serviceImpl struct {
	api      busapi.Client
	buses    busService.Bus
	seats    seatService.Seat
	receipts receiptService.Receipt
	events   eventService.Publisher
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	api busapi.Client,
	buses busService.Bus,
	seats seatService.Seat,
	receipts receiptService.Receipt,
	events eventService.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Transfer {
	return &serviceImpl{
		api:      api,
		buses:    buses,
		seats:    seats,
		receipts: receipts,
		events:   events,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, sess session.Session) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow := model.New(uuid.NewString(), sess)

	if err = s.save(ctx, flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sess session.Session, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) ChooseBooking(ctx context.Context, sess session.Session, flowID string, req dto.ChooseBookingRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.ChooseBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	bookings, err := s.api.ListUserBookings(ctx, sess.UserID())
	if err != nil {
		log.Error().Err(err).Int64("user_id", sess.UserID()).Msg("failed to list user bookings")

		return res, fmt.Errorf("failed to list user bookings: %w", err)
	}

	var booking *bookingModel.Booking

	for _, candidate := range bookingModel.FromAPIs(bookings) {
		if candidate.ID == req.BookingID {
			booking = &candidate

			break
		}
	}

	if booking == nil {
		return res, failure.NotFound(bookingNotFound) //nolint:wrapcheck
	}

	candidates, err := s.buses.TransferCandidates(ctx, booking.BusID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = flow.ChooseBooking(*booking, candidates.Source, candidates.Candidates); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.commit(ctx, flow, nil)
}

func (s *serviceImpl) ChooseBus(ctx context.Context, sess session.Session, flowID string, req dto.ChooseBusRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.ChooseBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	seats, err := s.seats.GetAvailable(ctx, req.BusID, constant.Empty)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = flow.ChooseBus(req.BusID, seats); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.commit(ctx, flow, nil)
}

func (s *serviceImpl) ChooseSeat(ctx context.Context, sess session.Session, flowID string, req dto.ChooseSeatRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.ChooseSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	outcome, err := flow.ChooseSeat(req.SeatNumber, req.Acknowledged)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.commit(ctx, flow, &outcome)
}

func (s *serviceImpl) Back(ctx context.Context, sess session.Session, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	if err = flow.Back(); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.commit(ctx, flow, nil)
}

func (s *serviceImpl) Acknowledge(ctx context.Context, sess session.Session, flowID string, req dto.AcknowledgeRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.Acknowledge")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	if err = flow.Acknowledge(req.Acknowledged); err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.commit(ctx, flow, nil)
}

// Submit posts the transfer, issues a receipt for the moved booking and announces it.
func (s *serviceImpl) Submit(ctx context.Context, sess session.Session, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock, err := cache.Acquire(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyLock, sess.UserID()), s.cfg.Cache.LockTTLSeconds)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	defer unlock()

	flow, err := s.load(ctx, sess, flowID)
	if err != nil {
		return res, err
	}

	req, err := flow.Request()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	message, err := s.api.TransferSeat(ctx, req)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", req.BookingID).Int64("new_bus_id", req.NewBusID).Msg("failed to transfer seat")

		return res, fmt.Errorf("failed to transfer seat: %w", err)
	}

	log.Info().Int64("booking_id", req.BookingID).Int64("new_bus_id", req.NewBusID).Int64("new_seat_id", req.NewSeatID).Msg("seat transferred")

	_, err = s.receipts.Generate(ctx, receiptModel.Receipt{
		BookingID:     flow.Booking.ID,
		PassengerName: sess.DisplayName(),
		BusName:       flow.TargetBus.Name,
		Route:         flow.TargetBus.Route,
		SeatNumber:    flow.TargetSeat.SeatNumber,
		BookingDate:   flow.Booking.BookingDate,
		Amount:        flow.TargetBus.Price,
		Status:        string(bookingModel.StatusConfirmed),
	})
	if err != nil {
		log.Warn().Err(err).Int64("booking_id", flow.Booking.ID).Msg("failed to generate transfer receipt")
	}

	s.events.Publish(ctx, eventModel.BookingEvent{
		Type:       eventModel.TypeBookingTransferred,
		BookingID:  req.BookingID,
		UserID:     sess.UserID(),
		BusID:      flow.Booking.BusID,
		SeatNumber: flow.TargetSeat.SeatNumber,
		Amount:     flow.TargetBus.Price,
		Status:     string(bookingModel.StatusConfirmed),
		NewBusID:   req.NewBusID,
		NewSeatID:  req.NewSeatID,
	})

	flow.MarkSubmitted(message, timezone.Now(), time.Duration(s.cfg.App.Transfer.ResetDelaySeconds)*time.Second)

	if err := s.save(context.WithoutCancel(ctx), flow); err != nil {
		log.Warn().Err(err).Str("flow_id", flow.ID).Msg("transfer submitted but flow state was not saved")
	}

	res.FromFlow(flow)

	return res, nil
}

func (s *serviceImpl) commit(ctx context.Context, flow *model.Flow, outcome *seatmap.Outcome) (res dto.FlowResponse, err error) {
	if err = s.save(ctx, flow); err != nil {
		return res, err
	}

	res.FromFlow(flow)
	res.Outcome = outcome

	return res, nil
}

func (s *serviceImpl) key(userID int64, flowID string) string {
	return shared.BuildCacheKey(constant.CacheKeyTransfer, userID, flowID)
}

// load also applies the post-submit reset, so a read after the reset time starts over.
func (s *serviceImpl) load(ctx context.Context, sess session.Session, flowID string) (*model.Flow, error) {
	var flow model.Flow

	if err := s.cache.Get(ctx, s.key(sess.UserID(), flowID), &flow); err != nil {
		if errors.Is(err, cache.Nil) {
			return nil, failure.NotFound(flowNotFound) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to load transfer")

		return nil, fmt.Errorf("failed to load transfer: %w", err)
	}

	if flow.UserID != sess.UserID() {
		return nil, failure.NotFound(flowNotFound) //nolint:wrapcheck
	}

	if flow.Refresh(timezone.Now()) {
		if err := s.save(ctx, &flow); err != nil {
			return nil, err
		}
	}

	return &flow, nil
}

func (s *serviceImpl) save(ctx context.Context, flow *model.Flow) error {
	if err := s.cache.Save(ctx, s.key(flow.UserID, flow.ID), flow, s.cfg.Cache.DraftTTL); err != nil {
		log.Error().Err(err).Str("flow_id", flow.ID).Msg("failed to save transfer")

		return fmt.Errorf("failed to save transfer: %w", err)
	}

	return nil
}
