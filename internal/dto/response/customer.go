package response

import (
	"time"

	"renovation-tracker/internal/data/entity"
)

type CustomerResponse struct {
	ID          string
	Name        string
	Phone       string
	Address     string
	JobType     string
	Date        string
	Status      entity.CustomerStatus
	StatusLabel string
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DashboardResponse struct {
	TotalCustomers      int64
	InProgressCustomers int64
	CompletedCustomers  int64
}

// FileResponse is a generated download.
type FileResponse struct {
	Filename    string
	ContentType string
	Data        []byte
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Phone:       customer.Phone,
		Address:     customer.Address,
		JobType:     customer.JobType,
		Date:        customer.Date,
		Status:      customer.Status,
		StatusLabel: customer.Status.Label(),
		Note:        customer.NoteText(),
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}
