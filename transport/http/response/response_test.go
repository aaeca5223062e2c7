package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"busbooking/shared/failure"
	"busbooking/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "validation",
			err:      failure.Validation("Please fill in all passenger details"),
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "Please fill in all passenger details", "kind": "validation"},
		},
		{
			name:     "network",
			err:      failure.Network("create booking", http.StatusInternalServerError, ""),
			wantCode: http.StatusBadGateway,
			wantBody: map[string]any{"error": "create booking failed with status 500", "kind": "network"},
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{"error": "boom"},
		},
		{
			name: "partial batch",
			err: &failure.PartialBatchFailure{
				SeatNumber: "R02",
				Completed:  []int64{101},
				Receipts:   []map[string]string{{"file_name": "booking-101.pdf"}},
				Err:        failure.Network("create booking", http.StatusBadRequest, "Seat already booked"),
			},
			wantCode: http.StatusBadGateway,
			wantBody: map[string]any{
				"error":       "failed to book seat R02: create booking failed with status 400: Seat already booked",
				"kind":        "partial_batch",
				"seat_number": "R02",
				"completed":   []any{float64(101)},
				"receipts":    []any{map[string]any{"file_name": "booking-101.pdf"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithJSON(recorder, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":1}}`, recorder.Body.String())
}

func TestWithFile(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithFile(recorder, "application/pdf", "receipt-41.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="receipt-41.pdf"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3", recorder.Body.String())
}
