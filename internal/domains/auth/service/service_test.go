package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"busbooking/infras/busapi"
	apiMocks "busbooking/infras/busapi/mocks"
	"busbooking/infras/jwt"
	jwtMocks "busbooking/infras/jwt/mocks"
	"busbooking/infras/otel/mocks"
	"busbooking/internal/domains/auth/model/dto"
	"busbooking/internal/domains/auth/service"
	userMocks "busbooking/internal/domains/user/mocks"
	userDto "busbooking/internal/domains/user/model/dto"
	"busbooking/shared/cache"
	cacheMocks "busbooking/shared/cache/mocks"
	"busbooking/shared/failure"
	"busbooking/shared/session"
	"busbooking/shared/timezone"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	api   *apiMocks.MockClient
	users *userMocks.MockUser
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Auth, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		api:   apiMocks.NewMockClient(ctrl),
		users: userMocks.NewMockUser(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	return service.New(d.api, d.users, d.jwt, d.cache, mocks.NewOtel()), d
}

func claims(expiresAt time.Time) *jwt.Claims {
	return &jwt.Claims{
		UserID: 7,
		Name:   "Asha",
		Email:  "asha@example.com",
		Role:   "USER",
		Age:    64,
		Gender: "FEMALE",
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "tid-1",
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{Email: "Asha@Example.com", Password: "secret1"}
	credentials := busapi.LoginRequest{Email: "asha@example.com", Password: "secret1"}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			setupMock: func(d deps) {
				d.api.EXPECT().Login(gomock.Any(), credentials).Return(busapi.User{
					ID: 7, Name: "Asha", Email: "asha@example.com", Age: 64, Gender: "FEMALE", Role: "USER",
				}, nil)
				d.jwt.EXPECT().Issue(session.Identity{
					UserID: 7, Name: "Asha", Email: "asha@example.com", Role: session.RoleUser, Age: 64, Gender: session.GenderFemale,
				}).Return(&jwt.Token{Value: "signed", TokenID: "tid-1", ExpiresIn: 1800}, nil)
			},
		},
		{
			name: "wrong password",
			setupMock: func(d deps) {
				d.api.EXPECT().Login(gomock.Any(), credentials).Return(busapi.User{}, failure.Unauthorized("Invalid credentials"))
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "upstream unavailable",
			setupMock: func(d deps) {
				d.api.EXPECT().Login(gomock.Any(), credentials).Return(busapi.User{}, failure.Network("login", 0, "connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "token issuance fails",
			setupMock: func(d deps) {
				d.api.EXPECT().Login(gomock.Any(), credentials).Return(busapi.User{ID: 7, Role: "USER"}, nil)
				d.jwt.EXPECT().Issue(gomock.Any()).Return(nil, errors.New("failed to sign token"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Login(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed", res.Token)
			assert.Equal(t, int64(7), res.User.ID)
			assert.Equal(t, session.RoleUser, res.User.Role)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, d := newService(t)

	req := userDto.CreateUserRequest{Name: "Ravi", Email: "ravi@example.com", Password: "secret1", Age: 30, Gender: "MALE"}
	d.users.EXPECT().Create(gomock.Any(), session.Anonymous(), req).
		Return(userDto.MessageResponse{Message: "User added successfully"}, nil)

	res, err := svc.Register(context.Background(), session.Anonymous(), req)
	require.NoError(t, err)
	assert.Equal(t, "User added successfully", res.Message)
}

func TestAuthService_Me(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Me(context.Background(), session.Anonymous())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	res, err := svc.Me(context.Background(), session.New(session.Identity{UserID: 7, Name: "Asha", Age: 64}))
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
	assert.True(t, res.ElderlyEligible)
}

func TestAuthService_Logout(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantErr   bool
	}{
		{
			name: "records the token id until expiry",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(claims(timezone.Now().Add(10*time.Minute)), nil)
				d.cache.EXPECT().Save(gomock.Any(), "revoked:tid-1", true, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ any, ttl int) error {
						assert.InDelta(t, 600, ttl, 2)

						return nil
					})
			},
		},
		{
			name: "invalid token is a no-op",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(nil, jwt.ErrExpiredToken)
			},
		},
		{
			name: "deny-list failure is reported",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(claims(timezone.Now().Add(10*time.Minute)), nil)
				d.cache.EXPECT().Save(gomock.Any(), "revoked:tid-1", true, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			err := svc.Logout(context.Background(), "signed")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "valid session",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(claims(timezone.Now().Add(time.Hour)), nil)
				d.cache.EXPECT().Get(gomock.Any(), "revoked:tid-1", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
		},
		{
			name: "revocation check unavailable still admits",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(claims(timezone.Now().Add(time.Hour)), nil)
				d.cache.EXPECT().Get(gomock.Any(), "revoked:tid-1", gomock.Any()).Return(errors.New("connection refused"))
			},
		},
		{
			name: "signed out session",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(claims(timezone.Now().Add(time.Hour)), nil)
				d.cache.EXPECT().Get(gomock.Any(), "revoked:tid-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*bool)) = true

						return nil
					})
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "tampered token",
			setupMock: func(d deps) {
				d.jwt.EXPECT().Validate("signed").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			sess, err := svc.Authenticate(context.Background(), "signed")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.False(t, sess.Authenticated())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), sess.UserID())
			assert.True(t, sess.ElderlyEligible())
			assert.False(t, sess.IsAdmin())
		})
	}
}
