package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pertashop/backoffice-go/internal/domain/receivable"
	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

type ReceivableHandler interface {
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	ListCustomers(w http.ResponseWriter, r *http.Request)
	UpdateCustomer(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)

	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	RecordPayment(w http.ResponseWriter, r *http.Request)
	Aging(w http.ResponseWriter, r *http.Request)
}

type ReceivableHandlerImpl struct {
	receivableService receivable.Service
}

func NewReceivableHandler(receivableService receivable.Service) ReceivableHandler {
	return &ReceivableHandlerImpl{receivableService: receivableService}
}

// CreateCustomer implements ReceivableHandler.
func (h *ReceivableHandlerImpl) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var createReq receivable.CreateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.receivableService.CreateCustomer(r.Context(), createReq)
	if err != nil {
		slog.Error("Create customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created successfully", created)
}

// GetCustomer implements ReceivableHandler.
func (h *ReceivableHandlerImpl) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.receivableService.GetCustomer(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCustomers implements ReceivableHandler.
func (h *ReceivableHandlerImpl) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page := queryIntDefault(r, "page", 1)
	limit := queryIntDefault(r, "limit", 20)

	customers, totalCount, err := h.receivableService.ListCustomers(r.Context(), page, limit)
	if err != nil {
		slog.Error("List customers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, customers, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalCount,
		TotalPages: totalPages(totalCount, limit),
	})
}

// UpdateCustomer implements ReceivableHandler.
func (h *ReceivableHandlerImpl) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var updateReq receivable.UpdateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update customer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.receivableService.UpdateCustomer(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update customer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", updated)
}

// DeleteCustomer implements ReceivableHandler.
func (h *ReceivableHandlerImpl) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.receivableService.DeleteCustomer(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted successfully", nil)
}

// Create implements ReceivableHandler.
func (h *ReceivableHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq receivable.CreateReceivableRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create receivable decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.receivableService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create receivable service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Receivable recorded successfully", created)
}

// Get implements ReceivableHandler.
func (h *ReceivableHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.receivableService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ReceivableHandler.
func (h *ReceivableHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := receivable.ReceivableFilter{
		CustomerID: queryStr(r, "customer_id"),
		Page:       queryIntDefault(r, "page", 1),
		Limit:      queryIntDefault(r, "limit", 20),
	}
	if status := queryStr(r, "status"); status != nil {
		s := receivable.Status(*status)
		filter.Status = &s
	}

	result, err := h.receivableService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List receivables service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Delete implements ReceivableHandler.
func (h *ReceivableHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.receivableService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Receivable deleted successfully", nil)
}

// RecordPayment implements ReceivableHandler.
func (h *ReceivableHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var paymentReq receivable.RecordPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&paymentReq); err != nil {
		slog.Error("Record payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	paymentReq.ReceivableID = chi.URLParam(r, "id")

	if err := paymentReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.receivableService.RecordPayment(r.Context(), paymentReq)
	if err != nil {
		slog.Error("Record payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded successfully", updated)
}

// Aging implements ReceivableHandler.
func (h *ReceivableHandlerImpl) Aging(w http.ResponseWriter, r *http.Request) {
	summary, err := h.receivableService.Aging(r.Context())
	if err != nil {
		slog.Error("Receivable aging service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
