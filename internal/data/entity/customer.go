package entity

// CustomerStatus is the job lifecycle state of a customer.
type CustomerStatus string

const (
	StatusPending    CustomerStatus = "Pending"
	StatusInProgress CustomerStatus = "InProgress"
	StatusCompleted  CustomerStatus = "Completed"
)

// Statuses lists every valid status in display order.
var Statuses = []CustomerStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s CustomerStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label is the human readable form used in pages and exports.
func (s CustomerStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Customer is a job record. Date is stored as entered and compared as a
// plain string.
type Customer struct {
	Base
	Name    string         `db:"name"`
	Phone   string         `db:"phone"`
	Address string         `db:"address"`
	JobType string         `db:"job_type"`
	Date    string         `db:"date"`
	Status  CustomerStatus `db:"status"`
	Note    *string        `db:"note"`
}

// NoteText returns the note or an empty string.
func (c *Customer) NoteText() string {
	if c.Note == nil {
		return ""
	}
	return *c.Note
}

// CustomerStats are the dashboard counters.
type CustomerStats struct {
	Total      int64
	InProgress int64
	Completed  int64
}
