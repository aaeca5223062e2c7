package booking

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/booking/model/dto"
	"busbooking/internal/domains/booking/service"
	"busbooking/shared"
	"busbooking/shared/constant"
	gDto "busbooking/shared/dto"
	"busbooking/shared/session"
	"busbooking/shared/validator"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/drafts", handler.StartDraft)
	router.Get("/drafts/{id}", handler.GetDraft)
	router.Delete("/drafts/{id}", handler.DiscardDraft)
	router.Post("/drafts/{id}/seats/{seatNumber}", handler.ToggleSeat)
	router.Post("/drafts/{id}/checkout", handler.Checkout)
	router.Post("/drafts/{id}/payment", handler.Pay)

	router.Get("/bookings", handler.GetBookings)
	router.Get("/bookings/mine", handler.GetMyBookings)
	router.Put("/bookings/{id}/cancel", handler.CancelBooking)
}

// StartDraft opens a booking draft for one bus.
// @Summary Start a booking draft
// @Description Load the bus and its available seats and open an empty selection.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StartDraftRequest true "Start Draft Request"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/drafts [post]
// @Security BearerAuth
func (handler *Handler) StartDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartDraft")
	defer scope.End()

	req := dto.StartDraftRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.StartDraft(ctx, session.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", req.BusID).Msg("failed to start draft")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetDraft returns a draft with its seat map.
// @Summary Get a booking draft
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.GetDraft(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ToggleSeat selects or deselects one seat of the draft.
// @Summary Toggle a seat
// @Description Priority seats answer with a confirmation prompt until the request acknowledges eligibility.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param seatNumber path string true "Seat number"
// @Param request body dto.ToggleSeatRequest false "Toggle Seat Request"
// @Success 200 {object} dto.ToggleResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/seats/{seatNumber} [post]
// @Security BearerAuth
func (handler *Handler) ToggleSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleSeat")
	defer scope.End()

	req := dto.ToggleSeatRequest{}
	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	draftID := chi.URLParam(request, constant.RequestParamID)
	seatNumber := chi.URLParam(request, constant.RequestParamSeatNumber)

	res, err := handler.service.ToggleSeat(ctx, session.FromContext(ctx), draftID, seatNumber, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Checkout moves the draft to passenger details.
// @Summary Checkout a draft
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	res, err := handler.service.Checkout(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Pay books every selected seat, one at a time.
// @Summary Pay for a draft
// @Description Seats are booked in order. A failure stops the batch and reports the seat and the bookings already made.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.PaymentRequest true "Payment Request"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.BatchError
// @Router /v1/drafts/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) Pay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pay")
	defer scope.End()

	req := dto.PaymentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	draftID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Pay(ctx, session.FromContext(ctx), draftID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("draft_id", draftID).Msg("failed to pay for draft")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking successful")

	response.WithJSON(writer, http.StatusCreated, res)
}

// DiscardDraft drops a draft without booking.
// @Summary Discard a draft
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/drafts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DiscardDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardDraft")
	defer scope.End()

	if err := handler.service.DiscardDraft(ctx, session.FromContext(ctx), chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Draft discarded")
}

// GetBookings lists every booking.
// @Summary List all bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} gDto.Paginated[model.Booking]
// @Failure 403 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	bookings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyBookings lists the bookings of the signed-in user.
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} model.Booking
// @Failure 401 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := handler.service.GetMine(ctx, session.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// CancelBooking cancels one booking.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, session.FromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
