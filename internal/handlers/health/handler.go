package health

import (
	"net/http"

	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Handler reports liveness. Readiness during shutdown is answered by the server itself.
type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports that the service is up.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}
