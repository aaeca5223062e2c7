package model

import (
	"busbooking/infras/busapi"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/shared/session"
)

const EntityName = "user"

// User is a registered passenger or admin. The password never leaves the bus management API.
type User struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Age        int            `json:"age"`
	Gender     session.Gender `json:"gender"`
	Role       session.Role   `json:"role"`
	IsPregnant bool           `json:"is_pregnant"`
}

func FromAPI(user busapi.User) User {
	return User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Age:        user.Age,
		Gender:     session.ParseGender(user.Gender),
		Role:       session.ParseRole(user.Role),
		IsPregnant: user.IsPregnant,
	}
}

func FromAPIs(users []busapi.User) []User {
	res := make([]User, len(users))
	for i, user := range users {
		res[i] = FromAPI(user)
	}

	return res
}

func (u User) Identity() session.Identity {
	return session.Identity{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Age:        u.Age,
		Gender:     u.Gender,
		IsPregnant: u.IsPregnant,
	}
}

type Priority struct {
	UserID                   int64          `json:"user_id"`
	ElderlyPriorityEligible  bool           `json:"elderly_priority_eligible"`
	PregnantPriorityEligible bool           `json:"pregnant_priority_eligible"`
	RecommendedSeatType      seatModel.Type `json:"recommended_seat_type"`
}

func PriorityFromAPI(info busapi.PriorityInfo) Priority {
	return Priority{
		UserID:                   info.UserID,
		ElderlyPriorityEligible:  info.ElderlyPriorityEligible,
		PregnantPriorityEligible: info.PregnantPriorityEligible,
		RecommendedSeatType:      seatModel.ParseType(info.RecommendedSeatType),
	}
}

// PriorityOf derives eligibility from the session alone, for when the upstream lookup is unavailable.
func PriorityOf(sess session.Session) Priority {
	priority := Priority{
		UserID:                   sess.UserID(),
		ElderlyPriorityEligible:  sess.ElderlyEligible(),
		PregnantPriorityEligible: sess.PregnantEligible(),
		RecommendedSeatType:      seatModel.TypeRegular,
	}

	switch {
	case priority.PregnantPriorityEligible:
		priority.RecommendedSeatType = seatModel.TypePregnant
	case priority.ElderlyPriorityEligible:
		priority.RecommendedSeatType = seatModel.TypeElderly
	}

	return priority
}
