package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pertashop/backoffice-go/internal/domain/store"
	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

type StoreHandler interface {
	GetStore(w http.ResponseWriter, r *http.Request)
	UpdateStore(w http.ResponseWriter, r *http.Request)

	CreateProduct(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)

	RecordMovement(w http.ResponseWriter, r *http.Request)
	ListMovements(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.Service
}

func NewStoreHandler(storeService store.Service) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// GetStore implements StoreHandler.
func (h *StoreHandlerImpl) GetStore(w http.ResponseWriter, r *http.Request) {
	result, err := h.storeService.GetStore(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStore implements StoreHandler.
func (h *StoreHandlerImpl) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var updateReq store.UpdateStoreRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.storeService.UpdateStore(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store profile updated successfully", updated)
}

// CreateProduct implements StoreHandler.
func (h *StoreHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createReq store.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.storeService.CreateProduct(r.Context(), createReq)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", created)
}

// GetProduct implements StoreHandler.
func (h *StoreHandlerImpl) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.storeService.GetProduct(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListProducts implements StoreHandler.
func (h *StoreHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	lowStock := false
	if b := queryBool(r, "low_stock"); b != nil {
		lowStock = *b
	}

	filter := store.ProductFilter{
		Search:   queryStr(r, "search"),
		IsActive: queryBool(r, "is_active"),
		LowStock: lowStock,
		Page:     queryIntDefault(r, "page", 1),
		Limit:    queryIntDefault(r, "limit", 20),
	}

	result, err := h.storeService.ListProducts(r.Context(), filter)
	if err != nil {
		slog.Error("List products service error", "error", err)
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

// UpdateProduct implements StoreHandler.
func (h *StoreHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var updateReq store.UpdateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.storeService.UpdateProduct(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated successfully", updated)
}

// DeleteProduct implements StoreHandler.
func (h *StoreHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.storeService.DeleteProduct(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted successfully", nil)
}

// RecordMovement implements StoreHandler.
func (h *StoreHandlerImpl) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var movementReq store.StockMovementRequest

	if err := json.NewDecoder(r.Body).Decode(&movementReq); err != nil {
		slog.Error("Record movement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	movementReq.ProductID = chi.URLParam(r, "id")

	if err := movementReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.storeService.RecordMovement(r.Context(), movementReq)
	if err != nil {
		slog.Error("Record movement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stock movement recorded successfully", updated)
}

// ListMovements implements StoreHandler.
func (h *StoreHandlerImpl) ListMovements(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	limit := queryIntDefault(r, "limit", 50)

	movements, err := h.storeService.ListMovements(r.Context(), productID, limit)
	if err != nil {
		slog.Error("List movements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, movements)
}
