package dto

import (
	"strings"
	"time"

	"busbooking/infras/busapi"
	"busbooking/infras/jwt"
	userModel "busbooking/internal/domains/user/model"
	"busbooking/shared/session"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) ToAPI() busapi.LoginRequest {
	return busapi.LoginRequest{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	ExpiresIn int64          `json:"expires_in"`
	User      userModel.User `json:"user"`
}

func (l *LoginResponse) FromToken(token *jwt.Token, user userModel.User) {
	l.Token = token.Value
	l.ExpiresAt = token.ExpiresAt
	l.ExpiresIn = token.ExpiresIn
	l.User = user
}

// SessionResponse is what the browser sees of the current session.
type SessionResponse struct {
	UserID           int64          `json:"user_id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Role             session.Role   `json:"role"`
	Age              int            `json:"age"`
	Gender           session.Gender `json:"gender"`
	IsPregnant       bool           `json:"is_pregnant"`
	IsAdmin          bool           `json:"is_admin"`
	ElderlyEligible  bool           `json:"elderly_eligible"`
	PregnantEligible bool           `json:"pregnant_eligible"`
}

func (r *SessionResponse) FromSession(sess session.Session) {
	identity := sess.Identity()

	r.UserID = identity.UserID
	r.Name = identity.Name
	r.Email = identity.Email
	r.Role = identity.Role
	r.Age = identity.Age
	r.Gender = identity.Gender
	r.IsPregnant = identity.IsPregnant
	r.IsAdmin = sess.IsAdmin()
	r.ElderlyEligible = sess.ElderlyEligible()
	r.PregnantEligible = sess.PregnantEligible()
}
