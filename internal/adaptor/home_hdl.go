package adaptor

import (
	"net/http"

	"renovation-tracker/internal/usecase"

	"go.uber.org/zap"
)

type HomeHandler struct {
	service usecase.CustomerService
	view    *View
	log     *zap.Logger
}

func NewHomeHandler(service usecase.CustomerService, view *View, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		view:    view,
		log:     log.With(zap.String("handler", "home")),
	}
}

// Dashboard handles GET /
func (h *HomeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.log.Error("Failed to load dashboard", zap.Error(err))
		h.view.InternalError(w, r)
		return
	}

	h.view.Render(w, r, http.StatusOK, "index", PageData{
		Title: "Dashboard",
		Data:  stats,
	})
}
