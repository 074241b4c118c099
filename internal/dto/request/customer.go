package request

// CustomerRequest carries the editable customer fields of the add and edit forms.
type CustomerRequest struct {
	Name    string `validate:"required,max=100"`
	Phone   string `validate:"required,max=20"`
	Address string `validate:"required,max=200"`
	JobType string `validate:"required,max=100"`
	Date    string `validate:"required,max=20"`
	Note    string `validate:"max=2000"`
}
