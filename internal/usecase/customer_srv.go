package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"renovation-tracker/internal/data/entity"
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/internal/dto/request"
	"renovation-tracker/internal/dto/response"
	"renovation-tracker/pkg/metrics"
	"renovation-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	ListCustomers(ctx context.Context) ([]response.CustomerResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error)

	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	UpdateStatus(ctx context.Context, customerID, status string) error
	UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
	now          func() time.Time
}

func NewCustomerService(customerRepo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		log:          log.With(zap.String("service", "customer")),
		now:          time.Now,
	}
}

func (s *customerService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	stats, err := s.customerRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &response.DashboardResponse{
		TotalCustomers:      stats.Total,
		InProgressCustomers: stats.InProgress,
		CompletedCustomers:  stats.Completed,
	}, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer)
	}

	s.log.Debug("Customers retrieved", zap.Int("count", len(customers)))
	return customerResponses, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	normalizeCustomerRequest(req)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, &ValidationError{Fields: errs}
	}

	now := s.now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		JobType: req.JobType,
		Date:    req.Date,
		Status:  entity.StatusPending,
		Note:    optionalNote(req.Note),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	metrics.CustomerMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

// UpdateStatus changes only the status. An unknown status is rejected
// before anything is written.
func (s *customerService) UpdateStatus(ctx context.Context, customerID, status string) error {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	newStatus := entity.CustomerStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		s.log.Warn("Rejected unknown status",
			zap.String("customer_id", customerID),
			zap.String("status", status))
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.customerRepo.UpdateStatus(ctx, customer.ID, newStatus); err != nil {
		return s.mapRepoError(err, "update status")
	}

	metrics.CustomerMutationsTotal.WithLabelValues("update_status").Inc()
	s.log.Info("Customer status updated",
		zap.String("customer_id", customerID),
		zap.String("from", string(customer.Status)),
		zap.String("to", string(newStatus)))
	return nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	normalizeCustomerRequest(req)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update customer validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, &ValidationError{Fields: errs}
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.JobType = req.JobType
	customer.Date = req.Date
	customer.Note = optionalNote(req.Note)
	customer.UpdatedAt = s.now()

	if err := s.customerRepo.UpdateFields(ctx, customer); err != nil {
		return nil, s.mapRepoError(err, "update customer")
	}

	metrics.CustomerMutationsTotal.WithLabelValues("update_fields").Inc()
	s.log.Info("Customer updated", zap.String("customer_id", customerID))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return ErrNotFound
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, "delete customer")
	}

	metrics.CustomerMutationsTotal.WithLabelValues("delete").Inc()
	return nil
}

// ==================== HELPER METHODS ====================

// findCustomer treats a malformed id the same as a missing one.
func (s *customerService) findCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, ErrNotFound
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	return customer, nil
}

func (s *customerService) mapRepoError(err error, operation string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", operation, err)
}

func normalizeCustomerRequest(req *request.CustomerRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.JobType = strings.TrimSpace(req.JobType)
	req.Date = strings.TrimSpace(req.Date)
	req.Note = strings.TrimSpace(req.Note)
}

func optionalNote(note string) *string {
	if note == "" {
		return nil
	}
	return &note
}
