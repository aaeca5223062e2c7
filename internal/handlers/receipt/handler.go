package receipt

import (
	"net/http"

	"busbooking/infras/otel"
	"busbooking/internal/domains/receipt/service"
	"busbooking/shared/constant"
	"busbooking/shared/session"
	"busbooking/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Receipt
	otel    otel.Otel
}

func New(service service.Receipt, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/receipts/{fileName}", handler.Download)
}

// Download returns a receipt PDF owned by the signed-in user.
// @Summary Download a receipt
// @Tags Receipt
// @Produce application/pdf
// @Param fileName path string true "Receipt file name"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /v1/receipts/{fileName} [get]
// @Security BearerAuth
func (handler *Handler) Download(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadReceipt")
	defer scope.End()

	fileName := chi.URLParam(request, constant.RequestParamFileName)

	body, err := handler.service.Download(ctx, session.FromContext(ctx), fileName)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithFile(writer, constant.ContentTypePDF, fileName, body)
}
