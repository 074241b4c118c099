package repository

import (
	"context"
	"errors"
	"fmt"

	"renovation-tracker/internal/data/entity"
	"renovation-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CustomerRepository stores customers. Every write is a single statement,
// so it is committed before the call returns.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	Stats(ctx context.Context) (*entity.CustomerStats, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CustomerStatus) error
	UpdateFields(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, name, phone, address, job_type, date, status, note, created_at, updated_at`

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, address, job_type, date, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.JobType,
		customer.Date,
		string(customer.Status),
		customer.Note,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", customer.Name),
		)
		return fmt.Errorf("create customer %s: %w", customer.Name, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return customer, nil
}

// FindAll returns every customer ordered by the date string, compared byte
// by byte regardless of the database locale.
func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY date COLLATE "C" ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all customers", zap.Error(err))
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	defer rows.Close()

	customers := []*entity.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Stats(ctx context.Context) (*entity.CustomerStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2)
		FROM customers
	`

	var stats entity.CustomerStats
	err := r.db.QueryRow(ctx, query, string(entity.StatusInProgress), string(entity.StatusCompleted)).Scan(
		&stats.Total,
		&stats.InProgress,
		&stats.Completed,
	)
	if err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return &stats, nil
}

func (r *customerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CustomerStatus) error {
	query := `UPDATE customers SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		r.log.Error("Failed to update customer status",
			zap.Error(err),
			zap.String("customer_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update customer status %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateFields overwrites the editable fields. Status is left as is.
func (r *customerRepository) UpdateFields(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, job_type = $5,
		    date = $6, note = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.JobType,
		customer.Date,
		customer.Note,
		customer.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Customer deleted", zap.String("customer_id", id.String()))
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var customer entity.Customer
	var status string
	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Address,
		&customer.JobType,
		&customer.Date,
		&status,
		&customer.Note,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	customer.Status = entity.CustomerStatus(status)
	return &customer, nil
}
