package wire

import (
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireExport(
	r chi.Router,
	exportHandler *adaptor.ExportHandler,
	gate func(access.Action) func(http.Handler) http.Handler,
) {
	r.Route("/export", func(r chi.Router) {
		r.Use(gate(access.Export))
		r.Get("/excel", exportHandler.Excel)
		r.Get("/pdf", exportHandler.PDF)
	})
}
