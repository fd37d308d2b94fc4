package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/pertashop/backoffice-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.RequestService
}

func NewOvertimeHandler(overtimeService overtime.RequestService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq overtime.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.overtimeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted successfully", created)
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.overtimeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := overtime.RequestFilter{
		StaffID: queryStr(r, "staff_id"),
		Status:  queryStr(r, "status"),
		Month:   queryInt(r, "month"),
		Year:    queryInt(r, "year"),
		Page:    queryIntDefault(r, "page", 1),
		Limit:   queryIntDefault(r, "limit", 20),
	}

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List overtime service error", "error", err)
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

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	approved, err := h.overtimeService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", approved)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var rejectReq overtime.RejectRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	if err := rejectReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.overtimeService.Reject(r.Context(), rejectReq)
	if err != nil {
		slog.Error("Reject overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", rejected)
}

// Delete implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.overtimeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request deleted successfully", nil)
}
