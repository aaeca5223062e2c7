package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"busbooking/config"
	"busbooking/shared/session"
	"busbooking/shared/timezone"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims carry the identity returned by the bus management API at login.
type Claims struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Age        int    `json:"age,omitempty"`
	Gender     string `json:"gender,omitempty"`
	IsPregnant bool   `json:"is_pregnant,omitempty"`
	jwt.RegisteredClaims
}

// Session rebuilds the immutable session value from verified claims.
func (c *Claims) Session() session.Session {
	return session.New(session.Identity{
		UserID:     c.UserID,
		Name:       c.Name,
		Email:      c.Email,
		Role:       session.ParseRole(c.Role),
		Age:        c.Age,
		Gender:     session.ParseGender(c.Gender),
		IsPregnant: c.IsPregnant,
	})
}

// Token is a signed session envelope.
type Token struct {
	Value     string    `json:"token"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int64     `json:"expires_in"`
}

type JWT interface {
	Issue(identity session.Identity) (*Token, error)
	Validate(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// Issue signs the identity with HS256 for the configured session lifetime.
func (s *Service) Issue(identity session.Identity) (*Token, error) {
	if identity.UserID == 0 {
		return nil, ErrInvalidClaim
	}

	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.config.Session.ExpireMin) * time.Minute)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID:     identity.UserID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       string(identity.Role),
		Age:        identity.Age,
		Gender:     string(identity.Gender),
		IsPregnant: identity.IsPregnant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Value:     signedToken,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		ExpiresIn: int64(s.config.Session.ExpireMin * 60),
	}, nil
}

// Validate verifies signature and expiry and returns the claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Session.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == 0 || claims.ID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) || len(authHeader) == len(prefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(prefix):], nil
}
