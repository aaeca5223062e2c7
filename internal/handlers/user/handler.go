package user

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/user/model/dto"
	"busbooking/internal/domains/user/service"
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
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/users", handler.GetUsers)
	router.Post("/users", handler.CreateUser)
	router.Get("/users/{id}/priority", handler.GetPriority)
}

// GetUsers lists registered users.
// @Summary List users
// @Tags User
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "Sort by (name, email, age)"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} gDto.Paginated[model.User]
// @Failure 403 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	users, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, users)
}

// CreateUser adds an account with any role.
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, session.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPriority reports priority seat eligibility.
// @Summary Priority eligibility
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.Priority
// @Failure 403 {object} response.Error
// @Router /v1/users/{id}/priority [get]
// @Security BearerAuth
func (handler *Handler) GetPriority(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriority")
	defer scope.End()

	userID, err := shared.ParseID(request, constant.RequestParamID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Priority(ctx, session.FromContext(ctx), userID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
