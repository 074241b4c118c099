// Package report turns the customer list into downloadable files. The
// generators are pure: they only see the slice they are given.
package report

import "renovation-tracker/internal/data/entity"

const (
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	DocumentContentType    = "application/pdf"
)

// Columns is the fixed column order shared by both formats.
var Columns = []string{"Name", "Phone", "Address", "Job Type", "Status", "Date", "Note"}

func row(c *entity.Customer) []string {
	return []string{
		c.Name,
		c.Phone,
		c.Address,
		c.JobType,
		string(c.Status),
		c.Date,
		c.NoteText(),
	}
}
