package usecase

import (
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Customer CustomerService
	Export   ExportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Customer: NewCustomerService(repo.Customer, log),
		Export:   NewExportService(repo.Customer, log),
	}
}
