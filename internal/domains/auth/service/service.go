package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"busbooking/infras/busapi"
	"busbooking/infras/jwt"
	"busbooking/infras/otel"
	"busbooking/internal/domains/auth/model/dto"
	userModel "busbooking/internal/domains/user/model"
	userDto "busbooking/internal/domains/user/model/dto"
	userService "busbooking/internal/domains/user/service"
	"busbooking/shared"
	"busbooking/shared/cache"
	"busbooking/shared/constant"
	"busbooking/shared/failure"
	"busbooking/shared/session"
	"busbooking/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	messageInvalidCredentials = "invalid email or password"
	messageInvalidSession     = "invalid or expired session"
	messageSessionRevoked     = "session has been signed out"
	messageSignInRequired     = "please sign in"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, creator session.Session, req userDto.CreateUserRequest) (userDto.MessageResponse, error)
	Me(ctx context.Context, sess session.Session) (dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (session.Session, error)
}

type serviceImpl struct {
	api        busapi.Client
	users      userService.User
	jwtService jwt.JWT
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(api busapi.Client, users userService.User, jwt jwt.JWT, cache cache.RedisCache, otel otel.Otel) Auth {
	return &serviceImpl{
		api:        api,
		users:      users,
		jwtService: jwt,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	credentials := req.ToAPI()

	raw, err := s.api.Login(ctx, credentials)
	if err != nil {
		if code := failure.GetCode(err); code == http.StatusUnauthorized || code == http.StatusNotFound {
			log.Warn().Str("email", credentials.Email).Msg("login attempt with invalid credentials")

			return res, failure.Unauthorized(messageInvalidCredentials) //nolint:wrapcheck
		}

		log.Error().Err(err).Str("email", credentials.Email).Msg("failed to login")

		return res, fmt.Errorf("failed to login: %w", err)
	}

	user := userModel.FromAPI(raw)

	token, err := s.jwtService.Issue(user.Identity())
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue session token")

		return res, fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user signed in")

	res.FromToken(token, user)

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, creator session.Session, req userDto.CreateUserRequest) (res userDto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.users.Create(ctx, creator, req)
	if err != nil {
		return res, fmt.Errorf("failed to register user: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, sess session.Session) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !sess.Authenticated() {
		return res, failure.Unauthorized(messageSignInRequired) //nolint:wrapcheck
	}

	res.FromSession(sess)

	return res, nil
}

// Logout denies the token id until the token would have expired anyway.
func (s *serviceImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		return nil
	}

	remaining := int(claims.ExpiresAt.Sub(timezone.Now()).Seconds())
	if remaining <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, revokedKey(claims.ID), true, remaining); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("failed to revoke session token")

		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	log.Info().Int64("user_id", claims.UserID).Msg("user signed out")

	return nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, token string) (sess session.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return sess, failure.Unauthorized(messageInvalidSession) //nolint:wrapcheck
	}

	var revoked bool

	err = s.cache.Get(ctx, revokedKey(claims.ID), &revoked)
	switch {
	case err == nil && revoked:
		return sess, failure.Unauthorized(messageSessionRevoked) //nolint:wrapcheck
	case err != nil && !errors.Is(err, cache.Nil):
		log.Warn().Err(err).Int64("user_id", claims.UserID).Msg("failed to check session revocation")
	}

	return claims.Session(), nil
}

func revokedKey(tokenID string) string {
	return shared.BuildCacheKey(constant.CacheKeyRevoked, tokenID)
}
