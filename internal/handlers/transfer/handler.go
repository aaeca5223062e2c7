package transfer

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/transfer/model/dto"
	"busbooking/internal/domains/transfer/service"
	"busbooking/shared/constant"
	"busbooking/shared/session"
	"busbooking/shared/validator"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Transfer
	otel    otel.Otel
}

func New(service service.Transfer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/transfers", handler.StartTransfer)
	router.Get("/transfers/{id}", handler.GetTransfer)
	router.Post("/transfers/{id}/booking", handler.ChooseBooking)
	router.Post("/transfers/{id}/bus", handler.ChooseBus)
	router.Post("/transfers/{id}/seat", handler.ChooseSeat)
	router.Post("/transfers/{id}/back", handler.Back)
	router.Post("/transfers/{id}/acknowledge", handler.Acknowledge)
	router.Post("/transfers/{id}/submit", handler.Submit)
}

// StartTransfer opens a seat transfer flow.
// @Summary Start a transfer
// @Tags Transfer
// @Produce json
// @Success 201 {object} dto.FlowResponse
// @Failure 401 {object} response.Error
// @Router /v1/transfers [post]
// @Security BearerAuth
func (handler *Handler) StartTransfer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartTransfer")
	defer scope.End()

	res, err := handler.service.Start(ctx, session.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start transfer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTransfer returns the flow state. A submitted flow resets itself after a short delay.
// @Summary Get a transfer
// @Tags Transfer
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 404 {object} response.Error
// @Router /v1/transfers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTransfer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransfer")
	defer scope.End()

	res, err := handler.service.Get(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseBooking picks the booking to move.
// @Summary Choose the booking
// @Tags Transfer
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.ChooseBookingRequest true "Choose Booking Request"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/transfers/{id}/booking [post]
// @Security BearerAuth
func (handler *Handler) ChooseBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseBooking")
	defer scope.End()

	req := dto.ChooseBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ChooseBooking(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseBus picks the destination bus and shows the fare difference.
// @Summary Choose the new bus
// @Tags Transfer
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.ChooseBusRequest true "Choose Bus Request"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} response.Error
// @Router /v1/transfers/{id}/bus [post]
// @Security BearerAuth
func (handler *Handler) ChooseBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseBus")
	defer scope.End()

	req := dto.ChooseBusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ChooseBus(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ChooseSeat picks the seat on the new bus.
// @Summary Choose the new seat
// @Tags Transfer
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.ChooseSeatRequest true "Choose Seat Request"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} response.Error
// @Router /v1/transfers/{id}/seat [post]
// @Security BearerAuth
func (handler *Handler) ChooseSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseSeat")
	defer scope.End()

	req := dto.ChooseSeatRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ChooseSeat(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Back returns to the previous step.
// @Summary Step back
// @Tags Transfer
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 409 {object} response.Error
// @Router /v1/transfers/{id}/back [post]
// @Security BearerAuth
func (handler *Handler) Back(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	res, err := handler.service.Back(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Acknowledge records the fare difference confirmation.
// @Summary Acknowledge the fare difference
// @Tags Transfer
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body dto.AcknowledgeRequest true "Acknowledge Request"
// @Success 200 {object} dto.FlowResponse
// @Failure 409 {object} response.Error
// @Router /v1/transfers/{id}/acknowledge [post]
// @Security BearerAuth
func (handler *Handler) Acknowledge(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Acknowledge")
	defer scope.End()

	req := dto.AcknowledgeRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Acknowledge(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Submit sends the transfer upstream.
// @Summary Submit the transfer
// @Tags Transfer
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/transfers/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Submit(ctx, session.FromContext(ctx), flowID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to submit transfer")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Seat transferred")

	response.WithJSON(writer, http.StatusOK, res)
}
