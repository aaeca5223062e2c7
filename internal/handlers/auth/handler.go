package auth

import (
	"net/http"
	"time"

	"busbooking/config"
	"busbooking/infras/otel"
	"busbooking/internal/domains/auth/model/dto"
	"busbooking/internal/domains/auth/service"
	userDto "busbooking/internal/domains/user/model/dto"
	"busbooking/shared/constant"
	"busbooking/shared/session"
	"busbooking/shared/validator"
	"busbooking/transport/http/middleware"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/auth/login", handler.Login)
	router.Post("/auth/logout", handler.Logout)
	router.Get("/auth/me", handler.Me)
	router.Post("/auth/register", handler.Register)
}

// Login signs the user in against the bus management API.
// @Summary Sign in
// @Description Verify the credentials upstream and start a session. The session is set as an HttpOnly cookie and also returned as a token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	http.SetCookie(writer, handler.cookie(res.Token, res.ExpiresAt))

	scope.AddEvent("User signed in")

	response.WithJSON(writer, http.StatusOK, res)
}

// Logout ends the session.
// @Summary Sign out
// @Description Expire the session cookie and deny the token until it would have expired.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if token := middleware.SessionToken(request, handler.cfg.Session.CookieName); token != "" {
		if err := handler.service.Logout(ctx, token); err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}
	}

	http.SetCookie(writer, handler.cookie("", time.Unix(0, 0)))

	response.WithMessage(writer, http.StatusOK, "Signed out")
}

// Me returns the current session.
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := handler.service.Me(ctx, session.FromContext(ctx))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Register creates a passenger account.
// @Summary Sign up
// @Description Create an account. The role is always USER unless an admin is signed in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body userDto.CreateUserRequest true "Register Request"
// @Success 201 {object} userDto.MessageResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := userDto.CreateUserRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Register(ctx, session.FromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) cookie(value string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
