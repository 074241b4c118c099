package usecase

import (
	"context"
	"fmt"

	"renovation-tracker/internal/data/repository"
	"renovation-tracker/internal/dto/response"
	"renovation-tracker/internal/report"
	"renovation-tracker/pkg/metrics"

	"go.uber.org/zap"
)

const (
	spreadsheetFilename = "musteri_listesi.xlsx"
	documentFilename    = "musteri_listesi.pdf"
)

// ExportService renders the current customer list into downloadable files.
// Every call reads the table again.
type ExportService interface {
	ExportSpreadsheet(ctx context.Context) (*response.FileResponse, error)
	ExportDocument(ctx context.Context) (*response.FileResponse, error)
}

type exportService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
}

func NewExportService(customerRepo repository.CustomerRepository, log *zap.Logger) ExportService {
	return &exportService{
		customerRepo: customerRepo,
		log:          log.With(zap.String("service", "export")),
	}
}

func (s *exportService) ExportSpreadsheet(ctx context.Context) (*response.FileResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers for export: %w", err)
	}

	data, err := report.Spreadsheet(customers)
	if err != nil {
		return nil, fmt.Errorf("build spreadsheet: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("xlsx").Inc()
	s.log.Info("Spreadsheet exported", zap.Int("rows", len(customers)), zap.Int("bytes", len(data)))

	return &response.FileResponse{
		Filename:    spreadsheetFilename,
		ContentType: report.SpreadsheetContentType,
		Data:        data,
	}, nil
}

func (s *exportService) ExportDocument(ctx context.Context) (*response.FileResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers for export: %w", err)
	}

	data, err := report.Document(customers)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("pdf").Inc()
	s.log.Info("Document exported", zap.Int("rows", len(customers)), zap.Int("bytes", len(data)))

	return &response.FileResponse{
		Filename:    documentFilename,
		ContentType: report.DocumentContentType,
		Data:        data,
	}, nil
}
