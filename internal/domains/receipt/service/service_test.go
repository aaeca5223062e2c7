package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"busbooking/config"
	"busbooking/infras/busapi"
	apiMocks "busbooking/infras/busapi/mocks"
	"busbooking/infras/otel/mocks"
	receiptMocks "busbooking/internal/domains/receipt/mocks"
	"busbooking/internal/domains/receipt/model"
	"busbooking/internal/domains/receipt/service"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleReceipt = model.Receipt{
	BookingID:     41,
	PassengerName: "Asha",
	BusName:       "Volvo AC",
	Route:         "Pune-Mumbai",
	SeatNumber:    "R01",
	BookingDate:   "2026-11-12T08:30:00",
	Amount:        money.FromMajor(500),
	Status:        "CONFIRMED",
}

func TestRender(t *testing.T) {
	data, err := service.Render(sampleReceipt)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestLocalStore(t *testing.T) {
	store := service.NewLocalStore(t.TempDir())

	location, err := store.Put(context.Background(), "booking-41.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, "/v1/receipts/booking-41.pdf", location)

	data, err := store.Get(context.Background(), "booking-41.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), data)

	_, err = store.Get(context.Background(), "booking-42.pdf")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestNewStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Receipt.LocalDir = t.TempDir()

	_, err := service.NewStore(cfg, nil).Put(context.Background(), "booking-1.pdf", []byte("x"))
	assert.NoError(t, err)
}

func TestReceiptService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(store *receiptMocks.MockStore)
		wantURL   string
		wantErr   bool
	}{
		{
			name: "stored",
			setupMock: func(store *receiptMocks.MockStore) {
				store.EXPECT().Put(gomock.Any(), "booking-41.pdf", gomock.Any()).Return("/v1/receipts/booking-41.pdf", nil)
			},
			wantURL: "/v1/receipts/booking-41.pdf",
		},
		{
			name: "store failure",
			setupMock: func(store *receiptMocks.MockStore) {
				store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := receiptMocks.NewMockStore(ctrl)
			tt.setupMock(store)

			svc := service.New(store, apiMocks.NewMockClient(ctrl), mocks.NewOtel())

			doc, err := svc.Generate(context.Background(), sampleReceipt)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.Document{FileName: "booking-41.pdf", URL: tt.wantURL}, doc)
		})
	}
}

func TestReceiptService_Download(t *testing.T) {
	user := session.New(session.Identity{UserID: 7, Email: "asha@example.com", Role: session.RoleUser})
	admin := session.New(session.Identity{UserID: 1, Email: "admin@example.com", Role: session.RoleAdmin})

	tests := []struct {
		name      string
		sess      session.Session
		fileName  string
		setupMock func(store *receiptMocks.MockStore, api *apiMocks.MockClient)
		wantCode  int
	}{
		{
			name:     "owner",
			sess:     user,
			fileName: "booking-41.pdf",
			setupMock: func(store *receiptMocks.MockStore, api *apiMocks.MockClient) {
				api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{{ID: 41}}, nil)
				store.EXPECT().Get(gomock.Any(), "booking-41.pdf").Return([]byte("%PDF"), nil)
			},
		},
		{
			name:     "someone else's receipt",
			sess:     user,
			fileName: "booking-99.pdf",
			setupMock: func(_ *receiptMocks.MockStore, api *apiMocks.MockClient) {
				api.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return([]busapi.Booking{{ID: 41}}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin skips ownership",
			sess:     admin,
			fileName: "booking-99.pdf",
			setupMock: func(store *receiptMocks.MockStore, _ *apiMocks.MockClient) {
				store.EXPECT().Get(gomock.Any(), "booking-99.pdf").Return([]byte("%PDF"), nil)
			},
		},
		{
			name:      "traversal",
			sess:      admin,
			fileName:  "../../etc/passwd",
			setupMock: func(*receiptMocks.MockStore, *apiMocks.MockClient) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := receiptMocks.NewMockStore(ctrl)
			api := apiMocks.NewMockClient(ctrl)
			tt.setupMock(store, api)

			svc := service.New(store, api, mocks.NewOtel())

			data, err := svc.Download(context.Background(), tt.sess, tt.fileName)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF"), data)
		})
	}
}
