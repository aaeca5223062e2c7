package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"busbooking/shared/constant"
	"busbooking/shared/failure"
	"busbooking/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string      `json:"error,omitempty"`
	Kind  failure.Kind `json:"kind,omitempty"`
}

// BatchError reports a multi-seat booking that stopped part way.
type BatchError struct {
	Error      string       `json:"error"`
	Kind       failure.Kind `json:"kind"`
	SeatNumber string       `json:"seat_number"`
	Completed  []int64      `json:"completed"`
	Receipts   any          `json:"receipts,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message and, when known, its kind
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	kind := failure.GetKind(err)
	errMsg := err.Error()

	var batch *failure.PartialBatchFailure
	if errors.As(err, &batch) {
		completed := batch.Completed
		if completed == nil {
			completed = []int64{}
		}

		response(writer, code, BatchError{
			Error:      errMsg,
			Kind:       kind,
			SeatNumber: batch.SeatNumber,
			Completed:  completed,
			Receipts:   batch.Receipts,
		})

		return
	}

	response(writer, code, Error{Error: &errMsg, Kind: kind})
}

// WithFile streams a generated document inline
func WithFile(writer http.ResponseWriter, contentType, fileName string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, "inline; filename=\""+fileName+"\"")
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
