// Package session holds the identity of the signed-in user as an immutable value.
//
// A Session is built once from the identity the bus management API returns on login
// and is then passed explicitly to every service call and flow. Nothing in the
// application mutates it; signing out simply discards it.
package session

import (
	"context"
	"strings"

	"busbooking/shared/constant"
)

type Role string

const (
	RoleUser  Role = constant.RoleUser
	RoleAdmin Role = constant.RoleAdmin
)

// ParseRole maps the upstream role string, defaulting to USER for anything unknown.
func ParseRole(value string) Role {
	if strings.EqualFold(strings.TrimSpace(value), constant.RoleAdmin) {
		return RoleAdmin
	}

	return RoleUser
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func ParseGender(value string) Gender {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(GenderMale):
		return GenderMale
	case string(GenderFemale):
		return GenderFemale
	default:
		return GenderOther
	}
}

const elderlyAge = 60

type Session struct {
	userID     int64
	name       string
	email      string
	role       Role
	age        int
	gender     Gender
	isPregnant bool
}

type Identity struct {
	UserID     int64
	Name       string
	Email      string
	Role       Role
	Age        int
	Gender     Gender
	IsPregnant bool
}

// New freezes an identity into a Session.
func New(identity Identity) Session {
	role := identity.Role
	if role == "" {
		role = RoleUser
	}

	return Session{
		userID:     identity.UserID,
		name:       identity.Name,
		email:      identity.Email,
		role:       role,
		age:        identity.Age,
		gender:     identity.Gender,
		isPregnant: identity.IsPregnant && identity.Gender == GenderFemale,
	}
}

// Anonymous is the zero session of a visitor who has not signed in.
func Anonymous() Session {
	return Session{}
}

func (s Session) Authenticated() bool { return s.userID != 0 }
func (s Session) UserID() int64       { return s.userID }
func (s Session) Email() string       { return s.email }
func (s Session) Role() Role          { return s.role }
func (s Session) Age() int            { return s.age }
func (s Session) Gender() Gender      { return s.gender }
func (s Session) IsPregnant() bool    { return s.isPregnant }
func (s Session) IsAdmin() bool       { return s.role == RoleAdmin }

// DisplayName falls back to the email when no name was registered.
func (s Session) DisplayName() string {
	if s.name != "" {
		return s.name
	}

	return s.email
}

func (s Session) ElderlyEligible() bool {
	return s.age >= elderlyAge
}

func (s Session) PregnantEligible() bool {
	return s.isPregnant
}

// Identity returns a copy of the fields the session was built from.
func (s Session) Identity() Identity {
	return Identity{
		UserID:     s.userID,
		Name:       s.name,
		Email:      s.email,
		Role:       s.role,
		Age:        s.age,
		Gender:     s.gender,
		IsPregnant: s.isPregnant,
	}
}

// WithContext is used by the transport layer only; services receive the Session as an argument.
func WithContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, sess)
}

func FromContext(ctx context.Context) Session {
	sess, ok := ctx.Value(constant.ContextKeySession).(Session)
	if !ok {
		return Anonymous()
	}

	return sess
}
