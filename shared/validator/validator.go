package validator

import (
	"busbooking/shared/failure"
	"busbooking/shared/timezone"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// one non-digit prefix followed by the seat index, e.g. R09
var seatNumberPattern = regexp.MustCompile(`^[^0-9][0-9]+$`)

func registerSeatNumberValidation(field val.FieldLevel) bool {
	return seatNumberPattern.MatchString(field.Field().String())
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := timezone.ParseDate(field.Field().String())

	return err == nil
}

func registerClockValidation(field val.FieldLevel) bool {
	_, err := timezone.NormalizeTime(field.Field().String())

	return err == nil
}

func registerFutureValidation(field val.FieldLevel) bool {
	t, err := timezone.ParseDate(field.Field().String())
	if err != nil {
		return false
	}

	today := timezone.Now().Truncate(24 * time.Hour)

	return !t.Before(today)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("seatnumber", registerSeatNumberValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clock", registerClockValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notpast", registerFutureValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}
