package adaptor

import (
	"errors"
	"net/http"

	"renovation-tracker/internal/dto/request"
	"renovation-tracker/internal/dto/response"
	"renovation-tracker/internal/usecase"
	"renovation-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	view    *View
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, view *View, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		view:    view,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// List handles GET /customer_list
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list customers")
		return
	}

	h.view.Render(w, r, http.StatusOK, "customer_list", PageData{
		Title: "Customers",
		Data:  customers,
	})
}

// AddPage handles GET /add_customer
func (h *CustomerHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "add_customer", PageData{
		Title: "Add Customer",
		Data:  response.CustomerResponse{},
	})
}

// Add handles POST /add_customer
func (h *CustomerHandler) Add(w http.ResponseWriter, r *http.Request) {
	req := customerForm(r)

	if _, err := h.service.CreateCustomer(r.Context(), req); err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			h.view.Render(w, r, http.StatusUnprocessableEntity, "add_customer", PageData{
				Title:  "Add Customer",
				Errors: verr.Fields,
				Data:   formToResponse("", req),
			})
			return
		}
		h.handleServiceError(w, r, err, "create customer")
		return
	}

	utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashSuccess, "Customer added successfully.")
}

// UpdateStatus handles POST /update_customer_status/{id}
func (h *CustomerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	if err := h.service.UpdateStatus(r.Context(), customerID, r.PostFormValue("status")); err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashDanger, "Invalid status selection.")
			return
		}
		h.handleServiceError(w, r, err, "update status")
		return
	}

	utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashSuccess, "Customer status updated.")
}

// EditPage handles GET /edit_customer/{id}
func (h *CustomerHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get customer")
		return
	}

	h.view.Render(w, r, http.StatusOK, "edit_customer", PageData{
		Title: "Edit Customer",
		Data:  *customer,
	})
}

// Edit handles POST /edit_customer/{id}
func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	req := customerForm(r)

	if _, err := h.service.UpdateCustomer(r.Context(), customerID, req); err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			h.view.Render(w, r, http.StatusUnprocessableEntity, "edit_customer", PageData{
				Title:  "Edit Customer",
				Errors: verr.Fields,
				Data:   formToResponse(customerID, req),
			})
			return
		}
		h.handleServiceError(w, r, err, "update customer")
		return
	}

	utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashSuccess, "Customer updated successfully.")
}

// Delete handles POST /delete_customer/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete customer")
		return
	}

	utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashSuccess, "Customer deleted.")
}

// ==================== HELPERS ====================

func customerForm(r *http.Request) *request.CustomerRequest {
	return &request.CustomerRequest{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
		JobType: r.PostFormValue("job_type"),
		Date:    r.PostFormValue("date"),
		Note:    r.PostFormValue("note"),
	}
}

// formToResponse refills the form after a rejected submit.
func formToResponse(id string, req *request.CustomerRequest) response.CustomerResponse {
	return response.CustomerResponse{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		JobType: req.JobType,
		Date:    req.Date,
		Note:    req.Note,
	}
}

func (h *CustomerHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.String("id", chi.URLParam(r, "id")))
		h.view.NotFound(w, r)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		h.view.InternalError(w, r)
	}
}
