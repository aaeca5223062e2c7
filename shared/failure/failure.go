package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for the browser so it can decide how to report it inline.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNetwork      Kind = "network"
	KindPartialBatch Kind = "partial_batch"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Kind: KindValidation}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Kind: KindValidation}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
var SubmissionInFlightError = &Failure{Code: http.StatusConflict, Message: "a submission is already in progress"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Kind:    KindValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindValidation,
	}
}

// Validation reports input that must be fixed before anything is sent upstream.
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

// Network reports a failed or non-2xx call to the bus management API.
func Network(operation string, status int, detail string) error {
	msg := fmt.Sprintf("%s failed", operation)
	if status > 0 {
		msg = fmt.Sprintf("%s failed with status %d", operation, status)
	}

	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}

	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		Kind:    KindNetwork,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// PartialBatchFailure is returned when a multi-seat booking stops at SeatNumber.
// Bookings listed in Completed were created before the failure and stay confirmed.
// Receipts holds the documents generated for them, if any.
type PartialBatchFailure struct {
	SeatNumber string
	Completed  []int64
	Receipts   any
	Err        error
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("failed to book seat %s: %v", e.SeatNumber, e.Err)
}

func (e *PartialBatchFailure) Unwrap() error {
	return e.Err
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var batch *PartialBatchFailure
	if errors.As(err, &batch) {
		return http.StatusBadGateway
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, empty when it carries none.
func GetKind(err error) Kind {
	var batch *PartialBatchFailure
	if errors.As(err, &batch) {
		return KindPartialBatch
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// IsValidation reports whether err blocks a submission locally.
func IsValidation(err error) bool {
	return GetKind(err) == KindValidation
}

// IsNetwork reports whether err came from a call to the bus management API.
func IsNetwork(err error) bool {
	return GetKind(err) == KindNetwork
}
