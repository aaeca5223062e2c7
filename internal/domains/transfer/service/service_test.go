package service_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"busbooking/config"
	"busbooking/infras/busapi"
	apiMocks "busbooking/infras/busapi/mocks"
	"busbooking/infras/otel/mocks"
	bookingModel "busbooking/internal/domains/booking/model"
	busMocks "busbooking/internal/domains/bus/mocks"
	busModel "busbooking/internal/domains/bus/model"
	busDto "busbooking/internal/domains/bus/model/dto"
	eventMocks "busbooking/internal/domains/event/mocks"
	eventModel "busbooking/internal/domains/event/model"
	receiptMocks "busbooking/internal/domains/receipt/mocks"
	receiptModel "busbooking/internal/domains/receipt/model"
	seatMocks "busbooking/internal/domains/seat/mocks"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/transfer/model"
	"busbooking/internal/domains/transfer/model/dto"
	"busbooking/internal/domains/transfer/service"
	"busbooking/shared/cache"
	cacheMocks "busbooking/shared/cache/mocks"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const flowKey = "transfer:7:f-1"

var (
	user = session.New(session.Identity{UserID: 7, Name: "Asha", Role: session.RoleUser})
	busA = busModel.Bus{ID: 1, Name: "Volvo AC", Route: "Pune-Mumbai", Price: money.FromMajor(500)}
	busB = busModel.Bus{ID: 2, Name: "Shivneri", Route: "Pune-Mumbai", Price: money.FromMajor(650)}
	r07  = seatModel.Seat{ID: 70, SeatNumber: "R07", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 2}
)

type deps struct {
	api      *apiMocks.MockClient
	buses    *busMocks.MockBus
	seats    *seatMocks.MockSeat
	receipts *receiptMocks.MockReceipt
	events   *eventMocks.MockPublisher
	cache    *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Transfer, deps) {
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
	cfg.Cache.DraftTTL = 1800
	cfg.Cache.LockTTLSeconds = 30
	cfg.App.Transfer.ResetDelaySeconds = 3

	return service.New(d.api, d.buses, d.seats, d.receipts, d.events, cfg, d.cache, mocks.NewOtel()), d
}

func expectFlow(c *cacheMocks.MockRedisCache, flow *model.Flow) {
	c.EXPECT().Get(gomock.Any(), flowKey, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
		*(value.(*model.Flow)) = *flow

		return nil
	})
}

func selectingBus(t *testing.T) *model.Flow {
	t.Helper()

	flow := model.New("f-1", user)
	booking := bookingModel.Booking{ID: 41, UserID: 7, BusID: 1, SeatNumber: "R03", Status: bookingModel.StatusConfirmed}
	require.NoError(t, flow.ChooseBooking(booking, busA, []busModel.Bus{busB}))

	return flow
}

func confirming(t *testing.T, acknowledged bool) *model.Flow {
	t.Helper()

	flow := selectingBus(t)
	require.NoError(t, flow.ChooseBus(busB.ID, []seatModel.Seat{r07}))

	_, err := flow.ChooseSeat("R07", false)
	require.NoError(t, err)
	require.NoError(t, flow.Acknowledge(acknowledged))

	return flow
}

func TestTransferService_ChooseBooking(t *testing.T) {
	tests := []struct {
		name      string
		bookingID int64
		setupMock func(d deps)
		wantState model.State
		wantCode  int
	}{
		{
			name:      "confirmed booking lists candidates",
			bookingID: 41,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{
					{ID: 41, UserID: 7, BusID: 1, SeatNumber: "R03", Status: "CONFIRMED"},
				}, nil)
				d.buses.EXPECT().TransferCandidates(gomock.Any(), int64(1)).
					Return(busDto.TransferCandidatesResponse{Source: busA, Candidates: []busModel.Bus{busB}}, nil)
				d.cache.EXPECT().Save(gomock.Any(), flowKey, gomock.Any(), 1800).Return(nil)
			},
			wantState: model.StateSelectingBus,
		},
		{
			name:      "unknown booking",
			bookingID: 99,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "cancelled booking",
			bookingID: 41,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{
					{ID: 41, UserID: 7, BusID: 1, Status: "CANCELLED"},
				}, nil)
				d.buses.EXPECT().TransferCandidates(gomock.Any(), int64(1)).
					Return(busDto.TransferCandidatesResponse{Source: busA}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "upstream failure leaves the flow unsaved",
			bookingID: 41,
			setupMock: func(d deps) {
				d.api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).
					Return(nil, failure.Network("list user bookings", http.StatusInternalServerError, ""))
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			expectFlow(d.cache, model.New("f-1", user))
			tt.setupMock(d)

			res, err := svc.ChooseBooking(context.Background(), user, "f-1", dto.ChooseBookingRequest{BookingID: tt.bookingID})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, res.State)
			assert.Len(t, res.Candidates, 1)
		})
	}
}

func TestTransferService_ChooseBus(t *testing.T) {
	svc, d := newService(t)
	expectFlow(d.cache, selectingBus(t))

	d.seats.EXPECT().GetAvailable(gomock.Any(), int64(2), "").Return([]seatModel.Seat{r07}, nil)
	d.cache.EXPECT().Save(gomock.Any(), flowKey, gomock.Any(), 1800).Return(nil)

	res, err := svc.ChooseBus(context.Background(), user, "f-1", dto.ChooseBusRequest{BusID: 2})
	require.NoError(t, err)

	assert.Equal(t, model.StateSelectingSeat, res.State)
	require.NotNil(t, res.Reconciliation)
	assert.Equal(t, money.FromMajor(150), res.Reconciliation.Delta)
	assert.Equal(t, model.ReconciliationPay, res.Reconciliation.Kind)
}

func TestTransferService_SubmitBlockedUntilAcknowledged(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Lock(gomock.Any(), "lock:7", gomock.Any(), 30).Return(true, nil)
	d.cache.EXPECT().Unlock(gomock.Any(), "lock:7", gomock.Any()).Return(true, nil)
	expectFlow(d.cache, confirming(t, false))

	_, err := svc.Submit(context.Background(), user, "f-1")
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
	assert.EqualError(t, err, "Please confirm the transfer by checking the checkbox")
}

func TestTransferService_Submit(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Lock(gomock.Any(), "lock:7", gomock.Any(), 30).Return(true, nil)
	d.cache.EXPECT().Unlock(gomock.Any(), "lock:7", gomock.Any()).Return(true, nil)
	expectFlow(d.cache, confirming(t, true))

	d.api.EXPECT().TransferSeat(gomock.Any(), busapi.TransferRequest{BookingID: 41, NewBusID: 2, NewSeatID: 70}).
		Return("Seat transferred successfully", nil)
	d.receipts.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, receipt receiptModel.Receipt) (receiptModel.Document, error) {
			assert.Equal(t, int64(41), receipt.BookingID)
			assert.Equal(t, "R07", receipt.SeatNumber)
			assert.Equal(t, "Shivneri", receipt.BusName)
			assert.Equal(t, money.FromMajor(650), receipt.Amount)

			return receiptModel.Document{FileName: receipt.FileName()}, nil
		})
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, events ...eventModel.BookingEvent) {
		require.Len(t, events, 1)
		assert.Equal(t, eventModel.TypeBookingTransferred, events[0].Type)
		assert.Equal(t, int64(2), events[0].NewBusID)
		assert.Equal(t, int64(70), events[0].NewSeatID)
	})
	d.cache.EXPECT().Save(gomock.Any(), flowKey, gomock.Any(), 1800).Return(nil)

	before := time.Now()

	res, err := svc.Submit(context.Background(), user, "f-1")
	require.NoError(t, err)

	assert.Equal(t, model.StateSubmitted, res.State)
	assert.Equal(t, "Seat transferred successfully", res.Result)
	require.NotNil(t, res.ResetAt)
	assert.WithinDuration(t, before.Add(3*time.Second), *res.ResetAt, time.Second)
}

func TestTransferService_SubmitNetworkFailureKeepsFlow(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Lock(gomock.Any(), "lock:7", gomock.Any(), 30).Return(true, nil)
	d.cache.EXPECT().Unlock(gomock.Any(), "lock:7", gomock.Any()).Return(true, nil)
	expectFlow(d.cache, confirming(t, true))

	d.api.EXPECT().TransferSeat(gomock.Any(), gomock.Any()).
		Return("", failure.Network("transfer seat", http.StatusBadRequest, "Seat already booked"))

	_, err := svc.Submit(context.Background(), user, "f-1")
	require.Error(t, err)
	assert.True(t, failure.IsNetwork(err))
	assert.Contains(t, err.Error(), "Seat already booked")
}

func TestTransferService_GetResetsAfterSubmit(t *testing.T) {
	svc, d := newService(t)

	flow := confirming(t, true)
	flow.MarkSubmitted("Seat transferred successfully", time.Now().Add(-time.Minute), 3*time.Second)
	expectFlow(d.cache, flow)

	d.cache.EXPECT().Save(gomock.Any(), flowKey, gomock.Any(), 1800).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			assert.Equal(t, model.StateSelectingBooking, value.(*model.Flow).State)

			return nil
		})

	res, err := svc.Get(context.Background(), user, "f-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateSelectingBooking, res.State)
}

func TestTransferService_GetMissing(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), flowKey, gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))

	_, err := svc.Get(context.Background(), user, "f-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
