package adaptor

import (
	"renovation-tracker/internal/usecase"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Home     *HomeHandler
	Auth     *AuthHandler
	Customer *CustomerHandler
	Export   *ExportHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, view *View, config *utils.Config, db Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Home:     NewHomeHandler(service.Customer, view, log),
		Auth:     NewAuthHandler(service.Auth, view, config.Session, log),
		Customer: NewCustomerHandler(service.Customer, view, log),
		Export:   NewExportHandler(service.Export, view, log),
		Health:   NewHealthHandler(db, config.App.Name),
	}
}
