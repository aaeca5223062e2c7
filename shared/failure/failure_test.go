package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"busbooking/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "select at least one seat",
	}

	if f.Error() != "select at least one seat" {
		t.Errorf("expected error message to be 'select at least one seat', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "ResourceRestrictedError", failure: failure.ResourceRestrictedError, code: http.StatusForbidden},
		{name: "SubmissionInFlightError", failure: failure.SubmissionInFlightError, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.BadRequest(errors.New("bad body"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	if !failure.IsValidation(err) {
		t.Error("expected bad request to be a validation failure")
	}
}

func TestNetwork(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		status    int
		detail    string
		want      string
	}{
		{
			name:      "transport error",
			operation: "create booking",
			detail:    "connection refused",
			want:      "create booking failed: connection refused",
		},
		{
			name:      "non-2xx status with body",
			operation: "transfer seat",
			status:    http.StatusInternalServerError,
			detail:    "Selected seat is not available",
			want:      "transfer seat failed with status 500: Selected seat is not available",
		},
		{
			name:      "status without body",
			operation: "list buses",
			status:    http.StatusServiceUnavailable,
			want:      "list buses failed with status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.Network(tt.operation, tt.status, tt.detail)

			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadGateway {
				t.Errorf("expected %d, got %d", http.StatusBadGateway, failure.GetCode(err))
			}

			if !failure.IsNetwork(err) {
				t.Error("expected network kind")
			}
		})
	}
}

func TestPartialBatchFailure(t *testing.T) {
	cause := failure.Network("create booking", http.StatusBadRequest, "Seat already booked")
	err := fmt.Errorf("failed to pay draft: %w", &failure.PartialBatchFailure{
		SeatNumber: "R02",
		Completed:  []int64{41},
		Err:        cause,
	})

	var batch *failure.PartialBatchFailure
	if !errors.As(err, &batch) {
		t.Fatal("expected PartialBatchFailure in chain")
	}

	if batch.SeatNumber != "R02" {
		t.Errorf("expected seat R02, got %s", batch.SeatNumber)
	}

	if !strings.Contains(err.Error(), "R02") {
		t.Errorf("expected message to name the failing seat, got %s", err.Error())
	}

	if failure.GetKind(err) != failure.KindPartialBatch {
		t.Errorf("expected kind %s, got %s", failure.KindPartialBatch, failure.GetKind(err))
	}

	if failure.GetCode(err) != http.StatusBadGateway {
		t.Errorf("expected %d, got %d", http.StatusBadGateway, failure.GetCode(err))
	}

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized", err: failure.Unauthorized("no session"), want: http.StatusUnauthorized},
		{name: "not found", err: failure.NotFound("bus not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("busy"), want: http.StatusConflict},
		{name: "forbidden", err: failure.Forbidden("not yours"), want: http.StatusForbidden},
		{name: "unimplemented", err: failure.Unimplemented("refund"), want: http.StatusNotImplemented},
		{name: "internal", err: failure.InternalError(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("outer: %w", failure.NotFound("seat")), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("plain"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGetKind_Plain(t *testing.T) {
	if failure.GetKind(errors.New("plain")) != "" {
		t.Error("expected empty kind")
	}

	if failure.IsValidation(failure.Conflict("busy")) {
		t.Error("conflict is not a validation failure")
	}
}
