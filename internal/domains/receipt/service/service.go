package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	"busbooking/internal/domains/receipt/model"
	"busbooking/shared/constant"
	"busbooking/shared/failure"
	"busbooking/shared/session"

	"github.com/rs/zerolog/log"
)

type Receipt interface {
	Generate(ctx context.Context, receipt model.Receipt) (model.Document, error)
	Download(ctx context.Context, sess session.Session, fileName string) ([]byte, error)
}

type serviceImpl struct {
	store Store
	api   busapi.Client
	otel  otel.Otel
}

func New(store Store, api busapi.Client, otel otel.Otel) Receipt {
	return &serviceImpl{
		store: store,
		api:   api,
		otel:  otel,
	}
}

func (s *serviceImpl) Generate(ctx context.Context, receipt model.Receipt) (res model.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.id", receipt.BookingID)

	data, err := Render(receipt)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", receipt.BookingID).Msg("failed to render receipt")

		return res, err
	}

	url, err := s.store.Put(ctx, receipt.FileName(), data)
	if err != nil {
		log.Error().Err(err).Int64("booking_id", receipt.BookingID).Msg("failed to store receipt")

		return res, fmt.Errorf("failed to store receipt: %w", err)
	}

	return model.Document{FileName: receipt.FileName(), URL: url}, nil
}

// Download serves any receipt to admins and only the receipts of their own bookings to users.
func (s *serviceImpl) Download(ctx context.Context, sess session.Session, fileName string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receipt.Download")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingID, ok := model.ParseFileName(fileName)
	if !ok {
		return nil, failure.BadRequestFromString("invalid receipt file name") //nolint:wrapcheck
	}

	if !sess.IsAdmin() {
		bookings, err := s.api.ListUserBookings(ctx, sess.UserID())
		if err != nil {
			log.Error().Err(err).Int64("user_id", sess.UserID()).Msg("failed to list user bookings")

			return nil, fmt.Errorf("failed to verify receipt owner: %w", err)
		}

		if !owns(bookings, bookingID) {
			return nil, failure.ResourceRestrictedError
		}
	}

	return s.store.Get(ctx, fileName)
}

func owns(bookings []busapi.Booking, bookingID int64) bool {
	for _, booking := range bookings {
		if booking.ID == bookingID {
			return true
		}
	}

	return false
}
