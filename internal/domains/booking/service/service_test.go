package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"busbooking/config"
	"busbooking/infras/busapi"
	apiMocks "busbooking/infras/busapi/mocks"
	"busbooking/infras/otel/mocks"
	"busbooking/internal/domains/booking/draft"
	"busbooking/internal/domains/booking/model"
	"busbooking/internal/domains/booking/model/dto"
	"busbooking/internal/domains/booking/service"
	busMocks "busbooking/internal/domains/bus/mocks"
	busModel "busbooking/internal/domains/bus/model"
	eventMocks "busbooking/internal/domains/event/mocks"
	eventModel "busbooking/internal/domains/event/model"
	receiptMocks "busbooking/internal/domains/receipt/mocks"
	receiptModel "busbooking/internal/domains/receipt/model"
	seatMocks "busbooking/internal/domains/seat/mocks"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/cache"
	cacheMocks "busbooking/shared/cache/mocks"
	gDto "busbooking/shared/dto"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	draftKey = "draft:7:d-1"
	lockKey  = "lock:7"
)

var (
	user  = session.New(session.Identity{UserID: 7, Name: "Asha", Email: "asha@example.com", Role: session.RoleUser})
	admin = session.New(session.Identity{UserID: 1, Name: "Root", Email: "root@example.com", Role: session.RoleAdmin})
	bus   = busModel.Bus{ID: 3, Name: "Volvo AC", Route: "Pune-Mumbai", Price: money.FromMajor(300)}
)

type deps struct {
	api      *apiMocks.MockClient
	buses    *busMocks.MockBus
	seats    *seatMocks.MockSeat
	receipts *receiptMocks.MockReceipt
	events   *eventMocks.MockPublisher
	cache    *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		api:      apiMocks.NewMockClient(ctrl),
		buses:    busMocks.NewMockBus(ctrl),
		seats:    seatMocks.NewMockSeat(ctrl),
		receipts: receiptMocks.NewMockReceipt(ctrl),
		events:   eventMocks.NewMockPublisher(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.Seat.RowWidth = 4
	cfg.Cache.DraftTTL = 1800
	cfg.Cache.LockTTLSeconds = 30

	return service.New(d.api, d.buses, d.seats, d.receipts, d.events, cfg, d.cache, mocks.NewOtel()), d
}

func busSeats() []seatModel.Seat {
	return []seatModel.Seat{
		{ID: 11, SeatNumber: "R01", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 12, SeatNumber: "R02", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 13, SeatNumber: "R03", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 14, SeatNumber: "P04", Type: seatModel.TypePregnant, Status: seatModel.StatusAvailable, BusID: 3},
	}
}

func storedDraft(selected ...string) draft.Draft {
	d := draft.New("d-1", user, bus, busSeats(), seatModel.Counts{Regular: 3, Pregnant: 1, Total: 4}, "2026-11-12T08:00:00", time.Now())
	d.SeatNumbers = append([]string{}, selected...)
	d.Amount = bus.Price.Times(len(selected))

	return *d
}

func expectDraft(c *cacheMocks.MockRedisCache, stored draft.Draft) {
	c.EXPECT().Get(gomock.Any(), draftKey, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
		*(value.(*draft.Draft)) = stored

		return nil
	})
}

func expectLock(c *cacheMocks.MockRedisCache) {
	c.EXPECT().Lock(gomock.Any(), lockKey, gomock.Any(), 30).Return(true, nil)
	c.EXPECT().Unlock(gomock.Any(), lockKey, gomock.Any()).Return(true, nil)
}

func TestBookingService_StartDraft(t *testing.T) {
	svc, d := newService(t)

	d.buses.EXPECT().Get(gomock.Any(), int64(3)).Return(bus, nil)
	d.seats.EXPECT().GetAll(gomock.Any(), int64(3)).Return(busSeats(), nil)
	d.seats.EXPECT().Count(gomock.Any(), int64(3)).Return(seatModel.Counts{Regular: 3, Pregnant: 1, Total: 4}, nil)
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 1800).
		DoAndReturn(func(_ context.Context, key string, value any, _ int) error {
			saved := value.(*draft.Draft)
			assert.Equal(t, fmt.Sprintf("draft:7:%s", saved.ID), key)
			assert.Empty(t, saved.SeatNumbers)

			return nil
		})

	res, err := svc.StartDraft(context.Background(), user, dto.StartDraftRequest{BusID: 3, BookingDate: "2026-11-12T08:00"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "2026-11-12T08:00:00", res.BookingDate)
	assert.Zero(t, res.Amount)
	assert.Len(t, res.Layout.Rows, 1)
	assert.Equal(t, 4, res.Layout.Counts.Total)
}

func TestBookingService_StartDraftInvalidDate(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.StartDraft(context.Background(), user, dto.StartDraftRequest{BusID: 3, BookingDate: "tomorrow"})
	assert.True(t, failure.IsValidation(err))
}

func TestBookingService_ToggleSeat(t *testing.T) {
	tests := []struct {
		name         string
		seatNumber   string
		acknowledged bool
		stored       draft.Draft
		saves        bool
		wantKind     seatmap.OutcomeKind
		wantSeats    []string
		wantAmount   money.Amount
		wantCode     int
	}{
		{
			name:       "regular seat is added",
			seatNumber: "R02",
			stored:     storedDraft("R01"),
			saves:      true,
			wantKind:   seatmap.OutcomeToggled,
			wantSeats:  []string{"R01", "R02"},
			wantAmount: money.FromMajor(600),
		},
		{
			name:       "priority seat asks first",
			seatNumber: "P04",
			stored:     storedDraft("R01"),
			wantKind:   seatmap.OutcomeConfirmationRequired,
			wantSeats:  []string{"R01"},
			wantAmount: money.FromMajor(300),
		},
		{
			name:         "acknowledged priority seat is added",
			seatNumber:   "P04",
			acknowledged: true,
			stored:       storedDraft(),
			saves:        true,
			wantKind:     seatmap.OutcomeToggled,
			wantSeats:    []string{"P04"},
			wantAmount:   money.FromMajor(300),
		},
		{
			name:       "unknown seat",
			seatNumber: "R99",
			stored:     storedDraft(),
			wantCode:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			expectDraft(d.cache, tt.stored)

			if tt.saves {
				d.cache.EXPECT().Save(gomock.Any(), draftKey, gomock.Any(), 1800).Return(nil)
			}

			res, err := svc.ToggleSeat(context.Background(), user, "d-1", tt.seatNumber, dto.ToggleSeatRequest{Acknowledged: tt.acknowledged})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, res.Outcome.Kind)
			assert.Equal(t, tt.wantSeats, res.SeatNumbers)
			assert.Equal(t, tt.wantAmount, res.Amount)
		})
	}
}

func TestBookingService_GetDraftMissing(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), draftKey, gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

	_, err := svc.GetDraft(context.Background(), user, "d-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Checkout(t *testing.T) {
	t.Run("empty draft", func(t *testing.T) {
		svc, d := newService(t)
		expectDraft(d.cache, storedDraft())

		_, err := svc.Checkout(context.Background(), user, "d-1")
		require.Error(t, err)
		assert.True(t, failure.IsValidation(err))
		assert.EqualError(t, err, "Please select at least one seat")
	})

	t.Run("additional seats", func(t *testing.T) {
		svc, d := newService(t)
		expectDraft(d.cache, storedDraft("R01", "R02", "R03"))

		res, err := svc.Checkout(context.Background(), user, "d-1")
		require.NoError(t, err)
		assert.Equal(t, money.FromMajor(900), res.Amount)
		assert.Equal(t, []string{"R02", "R03"}, res.AdditionalSeats)
		assert.Equal(t, bus, res.Bus)
	})
}

func passengers() dto.PaymentRequest {
	return dto.PaymentRequest{Passengers: []dto.PassengerRequest{
		{SeatNumber: "R02", Name: "Ravi", Age: 30, PhoneNumber: "9800000001", Address: "Pune"},
		{SeatNumber: "R03", Name: "Meera", Age: 62, PhoneNumber: "9800000002", Address: "Nashik"},
	}}
}

func created(id int64, seatNumber string) busapi.Booking {
	return busapi.Booking{ID: id, UserID: 7, BusID: 3, BookingDate: "2026-11-12T08:00:00", SeatNumber: seatNumber, Amount: money.FromMajor(300), Status: "CONFIRMED"}
}

func TestBookingService_Pay(t *testing.T) {
	svc, d := newService(t)
	expectLock(d.cache)
	expectDraft(d.cache, storedDraft("R01", "R02", "R03"))

	var names []string

	gomock.InOrder(
		d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req busapi.BookingRequest) (busapi.Booking, error) {
			assert.Equal(t, "R01", req.SeatNumber)
			assert.Equal(t, money.FromMajor(300), req.Amount)
			names = append(names, req.User.Name)

			return created(101, "R01"), nil
		}),
		d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req busapi.BookingRequest) (busapi.Booking, error) {
			assert.Equal(t, "R02", req.SeatNumber)
			names = append(names, req.User.Name)

			return created(102, "R02"), nil
		}),
		d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req busapi.BookingRequest) (busapi.Booking, error) {
			assert.Equal(t, "R03", req.SeatNumber)
			names = append(names, req.User.Name)

			return created(103, "R03"), nil
		}),
	)

	d.receipts.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, receipt receiptModel.Receipt) (receiptModel.Document, error) {
			return receiptModel.Document{FileName: receipt.FileName(), URL: "/v1/receipts/" + receipt.FileName()}, nil
		})
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, events ...eventModel.BookingEvent) {
			for _, event := range events {
				assert.Equal(t, eventModel.TypeBookingCreated, event.Type)
			}
		})
	d.cache.EXPECT().Delete(gomock.Any(), draftKey).Return(nil)

	res, err := svc.Pay(context.Background(), user, "d-1", passengers())
	require.NoError(t, err)

	assert.Equal(t, []string{"Asha", "Ravi", "Meera"}, names)
	assert.Len(t, res.Bookings, 3)
	assert.Len(t, res.Receipts, 3)
	assert.Equal(t, "booking-101.pdf", res.Receipts[0].FileName)
	assert.Equal(t, "/bookings", res.RedirectTo)
	assert.Equal(t, int64(2000), res.RedirectAfterMs)
}

func TestBookingService_PayStopsAtFirstFailure(t *testing.T) {
	svc, d := newService(t)
	expectLock(d.cache)
	expectDraft(d.cache, storedDraft("R01", "R02", "R03"))

	gomock.InOrder(
		d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(created(101, "R01"), nil),
		d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(busapi.Booking{}, failure.Network("create booking", http.StatusConflict, "Seat already booked")),
	)

	d.receipts.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(receiptModel.Document{FileName: "booking-101.pdf"}, nil)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any())
	d.cache.EXPECT().Save(gomock.Any(), draftKey, gomock.Any(), 1800).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			saved := value.(*draft.Draft)
			assert.Equal(t, []string{"R02", "R03"}, saved.SeatNumbers)
			assert.Equal(t, money.FromMajor(600), saved.Amount)

			return nil
		})

	_, err := svc.Pay(context.Background(), user, "d-1", passengers())
	require.Error(t, err)

	var batch *failure.PartialBatchFailure
	require.True(t, errors.As(err, &batch))
	assert.Equal(t, "R02", batch.SeatNumber)
	assert.Equal(t, []int64{101}, batch.Completed)
	assert.Equal(t, []receiptModel.Document{{FileName: "booking-101.pdf"}}, batch.Receipts)
	assert.True(t, failure.IsNetwork(batch.Err))
	assert.Equal(t, failure.KindPartialBatch, failure.GetKind(err))
	assert.Contains(t, err.Error(), "failed to book seat R02")
}

func TestBookingService_PayReceiptFailureDoesNotFailBooking(t *testing.T) {
	svc, d := newService(t)
	expectLock(d.cache)
	expectDraft(d.cache, storedDraft("R01"))

	d.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(created(101, "R01"), nil)
	d.receipts.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(receiptModel.Document{}, errors.New("disk full"))
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any())
	d.cache.EXPECT().Delete(gomock.Any(), draftKey).Return(nil)

	res, err := svc.Pay(context.Background(), user, "d-1", dto.PaymentRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Empty(t, res.Receipts)
}

func TestBookingService_PayValidation(t *testing.T) {
	svc, d := newService(t)
	expectLock(d.cache)
	expectDraft(d.cache, storedDraft("R01", "R02"))

	_, err := svc.Pay(context.Background(), user, "d-1", dto.PaymentRequest{})
	require.Error(t, err)
	assert.EqualError(t, err, "Please fill in all passenger details")
}

func TestBookingService_PayInFlight(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Lock(gomock.Any(), lockKey, gomock.Any(), 30).Return(false, nil)

	_, err := svc.Pay(context.Background(), user, "d-1", passengers())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		sess      session.Session
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "own booking",
			sess: user,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{created(101, "R01")}, nil)
				d.api.EXPECT().CancelBooking(gomock.Any(), int64(101)).Return("Booking cancelled successfully", nil)
				d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, events ...eventModel.BookingEvent) {
					assert.Equal(t, eventModel.TypeBookingCancelled, events[0].Type)
					assert.Equal(t, "R01", events[0].SeatNumber)
				})
			},
		},
		{
			name: "someone else's booking",
			sess: user,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{created(102, "R02")}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "admin cancels any booking",
			sess: admin,
			setupMock: func(d deps) {
				d.api.EXPECT().CancelBooking(gomock.Any(), int64(101)).Return("Booking cancelled successfully", nil)
				d.events.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			key := fmt.Sprintf("lock:%d", tt.sess.UserID())
			d.cache.EXPECT().Lock(gomock.Any(), key, gomock.Any(), 30).Return(true, nil)
			d.cache.EXPECT().Unlock(gomock.Any(), key, gomock.Any()).Return(true, nil)
			tt.setupMock(d)

			res, err := svc.Cancel(context.Background(), tt.sess, 101)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Booking cancelled successfully", res.Message)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	svc, d := newService(t)

	d.api.EXPECT().ListBookings(gomock.Any()).Return([]busapi.Booking{created(2, "R02"), created(3, "R03"), created(1, "R01")}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortDir: gDto.SortDirDesc})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(3), res.Items[0].ID)
	assert.Equal(t, int64(2), res.Items[1].ID)
	assert.Equal(t, 3, res.Metadata.Total)
	assert.Equal(t, model.StatusConfirmed, res.Items[0].Status)
}
