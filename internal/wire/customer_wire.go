package wire

import (
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	gate func(access.Action) func(http.Handler) http.Handler,
) {
	r.With(gate(access.ListCustomers)).Get("/customer_list", customerHandler.List)

	r.Group(func(r chi.Router) {
		r.Use(gate(access.CreateCustomer))
		r.Get("/add_customer", customerHandler.AddPage)
		r.Post("/add_customer", customerHandler.Add)
	})

	r.With(gate(access.UpdateStatus)).Post("/update_customer_status/{id}", customerHandler.UpdateStatus)

	r.Group(func(r chi.Router) {
		r.Use(gate(access.EditCustomer))
		r.Get("/edit_customer/{id}", customerHandler.EditPage)
		r.Post("/edit_customer/{id}", customerHandler.Edit)
	})

	r.With(gate(access.DeleteCustomer)).Post("/delete_customer/{id}", customerHandler.Delete)
}
