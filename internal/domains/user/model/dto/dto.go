package dto

import (
	"strings"

	"busbooking/infras/busapi"
	"busbooking/shared/session"
)

type CreateUserRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	Password   string `json:"password"    validate:"required,min=6"`
	Age        int    `json:"age"         validate:"required,gt=0,lte=120"`
	Gender     string `json:"gender"      validate:"required,oneof=MALE FEMALE OTHER"`
	Role       string `json:"role"        validate:"omitempty,oneof=USER ADMIN"`
	IsPregnant bool   `json:"is_pregnant"`
}

// ToAPI keeps the requested role only when an admin creates the account.
func (r CreateUserRequest) ToAPI(creator session.Session) busapi.UserRequest {
	role := session.RoleUser
	if creator.IsAdmin() {
		role = session.ParseRole(r.Role)
	}

	gender := session.ParseGender(r.Gender)

	return busapi.UserRequest{
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Age:        r.Age,
		Gender:     string(gender),
		Role:       string(role),
		Password:   r.Password,
		IsPregnant: r.IsPregnant && gender == session.GenderFemale,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
