package bus

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/bus/model/dto"
	"busbooking/internal/domains/bus/service"
	"busbooking/shared"
	"busbooking/shared/constant"
	gDto "busbooking/shared/dto"
	"busbooking/shared/validator"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bus
	otel    otel.Otel
}

func New(service service.Bus, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/buses", handler.GetBuses)
	router.Post("/buses", handler.CreateBus)
	router.Get("/buses/{id}", handler.GetBusByID)
	router.Put("/buses/{id}", handler.UpdateBus)
	router.Delete("/buses/{id}", handler.DeleteBus)
	router.Get("/buses/{id}/transfer-candidates", handler.GetTransferCandidates)
}

// GetBuses lists the catalogue.
// @Summary List buses
// @Description List buses with optional filtering, sorting and pagination.
// @Tags Bus
// @Produce json
// @Param name query string false "Filter by name"
// @Param route query string false "Filter by route"
// @Param departure_date query string false "Filter by departure date (yyyy-mm-dd or dd-mm-yyyy)"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort by (name, route, price, departure_date)"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} gDto.Paginated[model.Bus]
// @Failure 502 {object} response.Error
// @Router /v1/buses [get]
func (handler *Handler) GetBuses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.BusFilter{}
	filter.FromRequest(request)

	buses, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get buses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, buses)
}

// GetBusByID returns one bus.
// @Summary Get a bus
// @Tags Bus
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} model.Bus
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/buses/{id} [get]
func (handler *Handler) GetBusByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusByID")
	defer scope.End()

	id, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	bus, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to get bus")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bus)
}

// CreateBus adds a bus to the catalogue.
// @Summary Create a bus
// @Tags Bus
// @Accept json
// @Produce json
// @Param request body dto.BusRequest true "Bus Request"
// @Success 201 {object} model.Bus
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/buses [post]
// @Security BearerAuth
func (handler *Handler) CreateBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBus")
	defer scope.End()

	req := dto.BusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bus, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bus")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bus created successfully")

	response.WithJSON(writer, http.StatusCreated, bus)
}

// UpdateBus replaces a bus.
// @Summary Update a bus
// @Tags Bus
// @Accept json
// @Produce json
// @Param id path int true "Bus ID"
// @Param request body dto.BusRequest true "Bus Request"
// @Success 200 {object} model.Bus
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/buses/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBus")
	defer scope.End()

	id, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.BusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	bus, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to update bus")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bus)
}

// DeleteBus removes a bus.
// @Summary Delete a bus
// @Tags Bus
// @Produce json
// @Param id path int true "Bus ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/buses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBus")
	defer scope.End()

	id, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to delete bus")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Bus deleted successfully")
}

// GetTransferCandidates lists buses on the same route a booking could move to.
// @Summary Transfer candidates
// @Tags Bus
// @Produce json
// @Param id path int true "Source bus ID"
// @Success 200 {object} dto.TransferCandidatesResponse
// @Failure 404 {object} response.Error
// @Router /v1/buses/{id}/transfer-candidates [get]
// @Security BearerAuth
func (handler *Handler) GetTransferCandidates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransferCandidates")
	defer scope.End()

	id, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.TransferCandidates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to get transfer candidates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
