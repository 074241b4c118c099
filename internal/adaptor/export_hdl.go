package adaptor

import (
	"net/http"

	"renovation-tracker/internal/dto/response"
	"renovation-tracker/internal/usecase"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

type ExportHandler struct {
	service usecase.ExportService
	view    *View
	log     *zap.Logger
}

func NewExportHandler(service usecase.ExportService, view *View, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		view:    view,
		log:     log.With(zap.String("handler", "export")),
	}
}

// Excel handles GET /export/excel
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.ExportSpreadsheet(r.Context())
	h.send(w, r, file, err)
}

// PDF handles GET /export/pdf
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.ExportDocument(r.Context())
	h.send(w, r, file, err)
}

func (h *ExportHandler) send(w http.ResponseWriter, r *http.Request, file *response.FileResponse, err error) {
	if err != nil {
		h.log.Error("Failed to export customers", zap.Error(err), zap.String("path", r.URL.Path))
		h.view.InternalError(w, r)
		return
	}

	utils.ResponseAttachment(w, file.ContentType, file.Filename, file.Data)
}
