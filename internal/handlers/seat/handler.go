package seat

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/seat/model/dto"
	"busbooking/internal/domains/seat/service"
	"busbooking/shared"
	"busbooking/shared/constant"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seat
	otel    otel.Otel
}

func New(service service.Seat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/buses/{id}/seats", handler.GetSeats)
	router.Get("/buses/{id}/seats/available", handler.GetAvailableSeats)
	router.Get("/buses/{id}/seats/count", handler.GetSeatCount)
	router.Get("/buses/{id}/seats/layout", handler.GetLayout)
}

// GetSeats lists every seat of a bus.
// @Summary List seats
// @Tags Seat
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} dto.SeatsResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/buses/{id}/seats [get]
func (handler *Handler) GetSeats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	busID, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	seats, err := handler.service.GetAll(ctx, busID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to get seats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.SeatsResponse{BusID: busID, Seats: seats})
}

// GetAvailableSeats lists the unbooked seats, optionally of one type.
// @Summary List available seats
// @Tags Seat
// @Produce json
// @Param id path int true "Bus ID"
// @Param type query string false "Seat type (REGULAR, ELDERLY, PREGNANT)"
// @Success 200 {object} dto.SeatsResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/buses/{id}/seats/available [get]
func (handler *Handler) GetAvailableSeats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSeats")
	defer scope.End()

	busID, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	seats, err := handler.service.GetAvailable(ctx, busID, request.URL.Query().Get(constant.RequestParamSeatType))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to get available seats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.SeatsResponse{BusID: busID, Seats: seats})
}

// GetSeatCount returns per-type counts of available seats.
// @Summary Count available seats
// @Tags Seat
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} model.Counts
// @Failure 400 {object} response.Error
// @Router /v1/buses/{id}/seats/count [get]
func (handler *Handler) GetSeatCount(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeatCount")
	defer scope.End()

	busID, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	counts, err := handler.service.Count(ctx, busID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to count seats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, counts)
}

// GetLayout returns the seat map grouped into rows.
// @Summary Seat map layout
// @Tags Seat
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} dto.LayoutResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/buses/{id}/seats/layout [get]
func (handler *Handler) GetLayout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLayout")
	defer scope.End()

	busID, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	layout, err := handler.service.Layout(ctx, busID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", busID).Msg("failed to build seat layout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, layout)
}
