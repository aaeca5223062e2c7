package session_test

import (
	"context"
	"testing"

	"busbooking/shared/session"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	sess := session.New(session.Identity{
		UserID:     7,
		Email:      "meera@example.com",
		Age:        64,
		Gender:     session.GenderMale,
		IsPregnant: true,
	})

	assert.True(t, sess.Authenticated())
	assert.Equal(t, session.RoleUser, sess.Role())
	assert.Equal(t, "meera@example.com", sess.DisplayName())
	assert.True(t, sess.ElderlyEligible())
	assert.False(t, sess.PregnantEligible(), "pregnancy flag only counts for FEMALE")
}

func TestParseRoleAndGender(t *testing.T) {
	assert.Equal(t, session.RoleAdmin, session.ParseRole("admin"))
	assert.Equal(t, session.RoleUser, session.ParseRole("USER"))
	assert.Equal(t, session.RoleUser, session.ParseRole("superuser"))

	assert.Equal(t, session.GenderFemale, session.ParseGender("female"))
	assert.Equal(t, session.GenderOther, session.ParseGender(""))
}

func TestCanAccess(t *testing.T) {
	user := session.New(session.Identity{UserID: 1, Email: "u@example.com", Role: session.RoleUser})
	admin := session.New(session.Identity{UserID: 2, Email: "a@example.com", Role: session.RoleAdmin})

	tests := []struct {
		name     string
		sess     session.Session
		required session.Role
		want     session.Decision
	}{
		{name: "anonymous on user flow", sess: session.Anonymous(), required: session.RoleUser, want: session.DeniedUnauthenticated},
		{name: "anonymous on any signed-in flow", sess: session.Anonymous(), required: "", want: session.DeniedUnauthenticated},
		{name: "user on user flow", sess: user, required: session.RoleUser, want: session.Allowed},
		{name: "user on admin flow", sess: user, required: session.RoleAdmin, want: session.DeniedRole},
		{name: "admin on admin flow", sess: admin, required: session.RoleAdmin, want: session.Allowed},
		{name: "admin on user flow", sess: admin, required: session.RoleUser, want: session.Allowed},
		{name: "unknown role", sess: admin, required: session.Role("AUDITOR"), want: session.DeniedRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.CanAccess(tt.sess, tt.required)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == session.Allowed, got.Allowed())
		})
	}
}

func TestCanAccessAny(t *testing.T) {
	user := session.New(session.Identity{UserID: 1, Role: session.RoleUser})

	assert.Equal(t, session.Allowed, session.CanAccessAny(user, session.RoleAdmin, session.RoleUser))
	assert.Equal(t, session.DeniedRole, session.CanAccessAny(user, session.RoleAdmin))
	assert.Equal(t, session.Allowed, session.CanAccessAny(user))
	assert.Equal(t, session.DeniedUnauthenticated, session.CanAccessAny(session.Anonymous(), session.RoleUser))
}

func TestContextRoundTrip(t *testing.T) {
	sess := session.New(session.Identity{UserID: 9, Name: "Kiran"})
	ctx := session.WithContext(context.Background(), sess)

	assert.Equal(t, sess, session.FromContext(ctx))
	assert.False(t, session.FromContext(context.Background()).Authenticated())
}
