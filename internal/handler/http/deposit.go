package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pertashop/backoffice-go/internal/domain/deposit"
	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
}

type DepositHandlerImpl struct {
	depositService deposit.Service
}

func NewDepositHandler(depositService deposit.Service) DepositHandler {
	return &DepositHandlerImpl{depositService: depositService}
}

// Create implements DepositHandler.
func (h *DepositHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq deposit.CreateDepositRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.depositService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create deposit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deposit recorded successfully", created)
}

// Get implements DepositHandler.
func (h *DepositHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.depositService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DepositHandler.
func (h *DepositHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := deposit.DepositFilter{
		Month: queryInt(r, "month"),
		Year:  queryInt(r, "year"),
		Page:  queryIntDefault(r, "page", 1),
		Limit: queryIntDefault(r, "limit", 20),
	}

	result, err := h.depositService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List deposit service error", "error", err)
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

// Update implements DepositHandler.
func (h *DepositHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq deposit.UpdateDepositRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.depositService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update deposit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deposit updated successfully", updated)
}

// Delete implements DepositHandler.
func (h *DepositHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.depositService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deposit deleted successfully", nil)
}

// Preview implements DepositHandler. It runs the same calculation as
// Create without persisting anything.
func (h *DepositHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var previewReq deposit.CreateDepositRequest

	if err := json.NewDecoder(r.Body).Decode(&previewReq); err != nil {
		slog.Error("Preview deposit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := previewReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	calc, err := h.depositService.Preview(r.Context(), previewReq)
	if err != nil {
		slog.Error("Preview deposit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, calc)
}
