package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	"busbooking/internal/domains/user/model"
	"busbooking/internal/domains/user/model/dto"
	"busbooking/shared/constant"
	gDto "busbooking/shared/dto"
	"busbooking/shared/failure"
	"busbooking/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	sortByName  = "name"
	sortByEmail = "email"
	sortByAge   = "age"
)

type User interface {
	GetAll(ctx context.Context, q gDto.QueryParams) (gDto.Paginated[model.User], error)
	Create(ctx context.Context, creator session.Session, req dto.CreateUserRequest) (dto.MessageResponse, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Priority(ctx context.Context, sess session.Session, userID int64) (model.Priority, error)
}

type serviceImpl struct {
	api  busapi.Client
	otel otel.Otel
}

func New(api busapi.Client, otel otel.Otel) User {
	return &serviceImpl{
		api:  api,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, q gDto.QueryParams) (res gDto.Paginated[model.User], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := s.api.ListUsers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return res, fmt.Errorf("failed to list users: %w", err)
	}

	users := model.FromAPIs(raw)
	sortUsers(users, q)

	return gDto.Paginate(users, q), nil
}

// Create registers an account; only admins may pick a role other than USER.
func (s *serviceImpl) Create(ctx context.Context, creator session.Session, req dto.CreateUserRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := req.ToAPI(creator)

	message, err := s.api.AddUser(ctx, payload)
	if err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("failed to add user")

		return res, fmt.Errorf("failed to add user: %w", err)
	}

	log.Info().Str("email", payload.Email).Str("role", payload.Role).Msg("user added")

	return dto.MessageResponse{Message: message}, nil
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.api.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	return model.FromAPI(user), nil
}

// Priority answers for the signed-in user or, for admins, anyone.
func (s *serviceImpl) Priority(ctx context.Context, sess session.Session, userID int64) (res model.Priority, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Priority")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !sess.IsAdmin() && sess.UserID() != userID {
		return res, failure.ResourceRestrictedError
	}

	info, err := s.api.PriorityInfo(ctx, userID)
	if err != nil {
		if sess.UserID() == userID && failure.IsNetwork(err) {
			log.Warn().Err(err).Int64("user_id", userID).Msg("priority lookup failed, using session identity")

			return model.PriorityOf(sess), nil
		}

		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get priority info")

		return res, fmt.Errorf("failed to get priority info: %w", err)
	}

	return model.PriorityFromAPI(info), nil
}

func sortUsers(users []model.User, q gDto.QueryParams) {
	less := func(a, b model.User) bool { return a.ID < b.ID }

	switch q.SortBy {
	case sortByName:
		less = func(a, b model.User) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case sortByEmail:
		less = func(a, b model.User) bool { return a.Email < b.Email }
	case sortByAge:
		less = func(a, b model.User) bool { return a.Age < b.Age }
	}

	sort.SliceStable(users, func(i, j int) bool {
		if q.Descending() {
			return less(users[j], users[i])
		}

		return less(users[i], users[j])
	})
}
