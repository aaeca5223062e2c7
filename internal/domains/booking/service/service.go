package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"busbooking/config"
	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	"busbooking/internal/domains/booking/draft"
	"busbooking/internal/domains/booking/model"
	"busbooking/internal/domains/booking/model/dto"
	busService "busbooking/internal/domains/bus/service"
	eventModel "busbooking/internal/domains/event/model"
	eventService "busbooking/internal/domains/event/service"
	receiptModel "busbooking/internal/domains/receipt/model"
	receiptService "busbooking/internal/domains/receipt/service"
	"busbooking/internal/domains/seat/seatmap"
	seatService "busbooking/internal/domains/seat/service"
	"busbooking/shared"
	"busbooking/shared/cache"
	"busbooking/shared/constant"
	gDto "busbooking/shared/dto"
	"busbooking/shared/failure"
	"busbooking/shared/session"
	"busbooking/shared/taskqueue"
	"busbooking/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	paymentSuccessMessage = "Booking successful"
	paymentRedirectPath   = "/bookings"
	paymentRedirectDelay  = 2 * time.Second

	draftNotFound   = "booking draft not found"
	bookingNotFound = "booking not found"
)

type Booking interface {
	StartDraft(ctx context.Context, sess session.Session, req dto.StartDraftRequest) (dto.DraftResponse, error)
	GetDraft(ctx context.Context, sess session.Session, draftID string) (dto.DraftResponse, error)
	ToggleSeat(ctx context.Context, sess session.Session, draftID, seatNumber string, req dto.ToggleSeatRequest) (dto.ToggleResponse, error)
	Checkout(ctx context.Context, sess session.Session, draftID string) (dto.CheckoutResponse, error)
	Pay(ctx context.Context, sess session.Session, draftID string, req dto.PaymentRequest) (dto.PaymentResponse, error)
	DiscardDraft(ctx context.Context, sess session.Session, draftID string) error
	GetMine(ctx context.Context, sess session.Session) ([]model.Booking, error)
	GetAll(ctx context.Context, q gDto.QueryParams) (gDto.Paginated[model.Booking], error)
	Cancel(ctx context.Context, sess session.Session, bookingID int64) (dto.MessageResponse, error)
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
) Booking {
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

func (s *serviceImpl) StartDraft(ctx context.Context, sess session.Session, req dto.StartDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.StartDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := req.NormalizedBookingDate()
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	bus, err := s.buses.Get(ctx, req.BusID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	seats, err := s.seats.GetAll(ctx, req.BusID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	counts, err := s.seats.Count(ctx, req.BusID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	d := draft.New(uuid.NewString(), sess, bus, seats, counts, bookingDate, timezone.Now())

	m, err := s.seatMap(d)
	if err != nil {
		return res, err
	}

	if err = s.save(ctx, d); err != nil {
		return res, err
	}

	log.Info().Str("draft_id", d.ID).Int64("bus_id", d.BusID).Int64("user_id", d.UserID).Msg("booking draft started")

	res.FromDraft(d, m)

	return res, nil
}

func (s *serviceImpl) GetDraft(ctx context.Context, sess session.Session, draftID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	d, err := s.load(ctx, sess, draftID)
	if err != nil {
		return res, err
	}

	m, err := s.seatMap(d)
	if err != nil {
		return res, err
	}

	res.FromDraft(d, m)

	return res, nil
}

func (s *serviceImpl) ToggleSeat(ctx context.Context, sess session.Session, draftID, seatNumber string, req dto.ToggleSeatRequest) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.ToggleSeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("seat.number", seatNumber)

	d, err := s.load(ctx, sess, draftID)
	if err != nil {
		return res, err
	}

	m, err := s.seatMap(d)
	if err != nil {
		return res, err
	}

	outcome, err := d.Toggle(m, seatNumber, req.Acknowledged)
	if err != nil {
		return res, failure.NotFound(err.Error()) //nolint:wrapcheck
	}

	if outcome.Kind == seatmap.OutcomeToggled {
		if err = s.save(ctx, d); err != nil {
			return res, err
		}
	}

	res.Outcome = outcome
	res.FromDraft(d, m)

	return res, nil
}

func (s *serviceImpl) Checkout(ctx context.Context, sess session.Session, draftID string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	d, err := s.load(ctx, sess, draftID)
	if err != nil {
		return res, err
	}

	if err = d.Checkout(); err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromDraft(d)

	return res, nil
}

// Pay books every seat of the draft one at a time. The first failure stops the batch; seats
// booked before it stay confirmed and are dropped from the draft so a retry only pays the rest.
func (s *serviceImpl) Pay(ctx context.Context, sess session.Session, draftID string, req dto.PaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Pay")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock, err := s.lock(ctx, sess)
	if err != nil {
		return res, err
	}
	defer unlock()

	d, err := s.load(ctx, sess, draftID)
	if err != nil {
		return res, err
	}

	requests, err := d.Plan(sess, req.ToModels())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	passengers := make(map[string]string, len(requests))
	queue := taskqueue.New[busapi.Booking]()

	for _, request := range requests {
		passengers[request.SeatNumber] = request.User.Name

		queue.Push(request.SeatNumber, func(ctx context.Context) (busapi.Booking, error) {
			return s.api.CreateBooking(ctx, request)
		})
	}

	receipts := make([]receiptModel.Document, 0, len(requests))
	events := make([]eventModel.BookingEvent, 0, len(requests))

	queue.OnCompleted(func(ctx context.Context, result taskqueue.Result[busapi.Booking]) {
		booking := model.FromAPI(result.Value)

		events = append(events, eventModel.BookingEvent{
			Type:       eventModel.TypeBookingCreated,
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			BusID:      booking.BusID,
			SeatNumber: booking.SeatNumber,
			Amount:     booking.Amount,
			Status:     string(booking.Status),
		})

		document, err := s.receipts.Generate(ctx, receiptModel.Receipt{
			BookingID:     booking.ID,
			PassengerName: passengers[result.Key],
			BusName:       d.Bus.Name,
			Route:         d.Bus.Route,
			SeatNumber:    booking.SeatNumber,
			BookingDate:   booking.BookingDate,
			Amount:        booking.Amount,
			Status:        string(booking.Status),
		})
		if err != nil {
			log.Warn().Err(err).Int64("booking_id", booking.ID).Msg("failed to generate receipt")

			return
		}

		receipts = append(receipts, document)
	})

	report := queue.Run(ctx)

	if len(events) > 0 {
		s.events.Publish(ctx, events...)
	}

	bookings := model.FromAPIs(report.Values())

	if !report.OK() {
		completed := make([]int64, len(bookings))
		booked := make([]string, len(bookings))

		for i, booking := range bookings {
			completed[i] = booking.ID
			booked[i] = report.Completed[i].Key
		}

		log.Error().Err(report.Failed.Err).Str("seat_number", report.Failed.Key).Ints64("completed", completed).Msg("failed to book seat")

		if len(booked) > 0 {
			d.Release(booked...)

			if saveErr := s.save(context.WithoutCancel(ctx), d); saveErr != nil {
				log.Error().Err(saveErr).Str("draft_id", d.ID).Msg("failed to save draft after partial payment")
			}
		}

		batch := &failure.PartialBatchFailure{
			SeatNumber: report.Failed.Key,
			Completed:  completed,
			Err:        report.Failed.Err,
		}

		if len(receipts) > 0 {
			batch.Receipts = receipts
		}

		return res, batch
	}

	if err := s.cache.Delete(context.WithoutCancel(ctx), s.draftKey(sess, d.ID)); err != nil {
		log.Warn().Err(err).Str("draft_id", d.ID).Msg("failed to delete paid draft")
	}

	log.Info().Str("draft_id", d.ID).Int("seats", len(bookings)).Msg("booking draft paid")

	return dto.PaymentResponse{
		Message:         paymentSuccessMessage,
		Bookings:        bookings,
		Receipts:        receipts,
		RedirectTo:      paymentRedirectPath,
		RedirectAfterMs: paymentRedirectDelay.Milliseconds(),
	}, nil
}

func (s *serviceImpl) DiscardDraft(ctx context.Context, sess session.Session, draftID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.DiscardDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, s.draftKey(sess, draftID)); err != nil {
		log.Error().Err(err).Str("draft_id", draftID).Msg("failed to discard draft")

		return fmt.Errorf("failed to discard draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, sess session.Session) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.api.ListUserBookings(ctx, sess.UserID())
	if err != nil {
		log.Error().Err(err).Int64("user_id", sess.UserID()).Msg("failed to list user bookings")

		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}

	return model.FromAPIs(bookings), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, q gDto.QueryParams) (res gDto.Paginated[model.Booking], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := s.api.ListBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := model.FromAPIs(raw)

	sort.SliceStable(bookings, func(i, j int) bool {
		if q.Descending() {
			return bookings[i].ID > bookings[j].ID
		}

		return bookings[i].ID < bookings[j].ID
	})

	return gDto.Paginate(bookings, q), nil
}

// Cancel lets users cancel only their own bookings; admins may cancel any.
func (s *serviceImpl) Cancel(ctx context.Context, sess session.Session, bookingID int64) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock, err := s.lock(ctx, sess)
	if err != nil {
		return res, err
	}
	defer unlock()

	booking := model.Booking{ID: bookingID, UserID: sess.UserID()}

	if !sess.IsAdmin() {
		mine, err := s.GetMine(ctx, sess)
		if err != nil {
			return res, err
		}

		owned := false

		for _, candidate := range mine {
			if candidate.ID == bookingID {
				booking = candidate
				owned = true

				break
			}
		}

		if !owned {
			return res, failure.NotFound(bookingNotFound) //nolint:wrapcheck
		}
	}

	message, err := s.api.CancelBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", bookingID).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.events.Publish(ctx, eventModel.BookingEvent{
		Type:       eventModel.TypeBookingCancelled,
		BookingID:  bookingID,
		UserID:     booking.UserID,
		BusID:      booking.BusID,
		SeatNumber: booking.SeatNumber,
		Amount:     booking.Amount,
		Status:     string(model.StatusCancelled),
	})

	return dto.MessageResponse{Message: message}, nil
}

func (s *serviceImpl) seatMap(d *draft.Draft) (*seatmap.Map, error) {
	return seatService.BuildMap(d.Seats, d.SeatNumbers, s.cfg.App.Seat.RowWidth, d.OnToggle) //nolint:wrapcheck
}

func (s *serviceImpl) draftKey(sess session.Session, draftID string) string {
	return shared.BuildCacheKey(constant.CacheKeyDraft, sess.UserID(), draftID)
}

func (s *serviceImpl) load(ctx context.Context, sess session.Session, draftID string) (*draft.Draft, error) {
	var d draft.Draft

	if err := s.cache.Get(ctx, s.draftKey(sess, draftID), &d); err != nil {
		if errors.Is(err, cache.Nil) {
			return nil, failure.NotFound(draftNotFound) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("draft_id", draftID).Msg("failed to load draft")

		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	if d.UserID != sess.UserID() {
		return nil, failure.NotFound(draftNotFound) //nolint:wrapcheck
	}

	return &d, nil
}

func (s *serviceImpl) save(ctx context.Context, d *draft.Draft) error {
	key := shared.BuildCacheKey(constant.CacheKeyDraft, d.UserID, d.ID)

	if err := s.cache.Save(ctx, key, d, s.cfg.Cache.DraftTTL); err != nil {
		log.Error().Err(err).Str("draft_id", d.ID).Msg("failed to save draft")

		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) lock(ctx context.Context, sess session.Session) (func(), error) {
	return cache.Acquire(ctx, s.cache, shared.BuildCacheKey(constant.CacheKeyLock, sess.UserID()), s.cfg.Cache.LockTTLSeconds) //nolint:wrapcheck
}
