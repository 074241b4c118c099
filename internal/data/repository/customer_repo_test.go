package repository

import (
	"context"
	"testing"
	"time"

	"renovation-tracker/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var customerCols = []string{"id", "name", "phone", "address", "job_type", "date", "status", "note", "created_at", "updated_at"}

func newCustomerRepo(t *testing.T) (CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCustomerRepository(mock, zap.NewNop()), mock
}

func TestCustomerRepository_Create(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	now := time.Now()
	customer := &entity.Customer{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:    "Ali Veli",
		Phone:   "5551234567",
		Address: "Ankara",
		JobType: "Boya",
		Date:    "2024-01-01",
		Status:  entity.StatusPending,
	}

	mock.ExpectExec("INSERT INTO customers").
		WithArgs(customer.ID, "Ali Veli", "5551234567", "Ankara", "Boya", "2024-01-01", "Pending",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), customer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_FindAllOrdersByDateString(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	now := time.Now()
	note := "second floor"
	rows := mock.NewRows(customerCols).
		AddRow(uuid.New(), "A", "1", "Izmir", "Boya", "2023-12-31", "Completed", &note, now, now).
		AddRow(uuid.New(), "B", "2", "Ankara", "Badana", "2024-01-01", "Pending", (*string)(nil), now, now)

	mock.ExpectQuery(`FROM customers ORDER BY date COLLATE "C" ASC`).WillReturnRows(rows)

	customers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "2023-12-31", customers[0].Date)
	assert.Equal(t, entity.StatusCompleted, customers[0].Status)
	assert.Equal(t, "second floor", customers[0].NoteText())
	assert.Equal(t, "", customers[1].NoteText())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_FindAllEmpty(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery("FROM customers").WillReturnRows(mock.NewRows(customerCols))

	customers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCustomerRepository_UpdateStatusNotFound(t *testing.T) {
	repo, mock := newCustomerRepo(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE customers SET status").
		WithArgs(id, "Completed").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), id, entity.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_UpdateFieldsLeavesStatus(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	customer := &entity.Customer{
		Base:    entity.Base{ID: uuid.New(), UpdatedAt: time.Now()},
		Name:    "Ali Veli",
		Phone:   "5551234567",
		Address: "Istanbul",
		JobType: "Tadilat",
		Date:    "2024-02-01",
	}

	mock.ExpectExec("UPDATE customers\\s+SET name = \\$2, phone = \\$3, address = \\$4, job_type = \\$5,\\s+date = \\$6, note = \\$7, updated_at = \\$8").
		WithArgs(customer.ID, "Ali Veli", "5551234567", "Istanbul", "Tadilat", "2024-02-01", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateFields(context.Background(), customer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Delete(t *testing.T) {
	repo, mock := newCustomerRepo(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM customers").WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("DELETE FROM customers").WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Stats(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery("FROM customers").
		WithArgs("InProgress", "Completed").
		WillReturnRows(mock.NewRows([]string{"total", "in_progress", "completed"}).AddRow(int64(5), int64(2), int64(1)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.CustomerStats{Total: 5, InProgress: 2, Completed: 1}, stats)
}
