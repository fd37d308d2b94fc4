package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/pertashop/backoffice-go/internal/domain/staff"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtime.RequestRepository
	StaffRepository staff.Repository
}

func NewOvertimeService(repo overtime.RequestRepository, staffRepo staff.Repository) overtime.RequestService {
	return &OvertimeServiceImpl{
		RequestRepository: repo,
		StaffRepository:   staffRepo,
	}
}

func reviewerFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func toResponse(req overtime.Request) overtime.RequestResponse {
	resp := overtime.RequestResponse{
		ID:            req.ID,
		StaffID:       req.StaffID,
		Date:          req.Date.Format("2006-01-02"),
		Minutes:       req.Minutes,
		Hours:         req.Hours,
		DurationLabel: overtime.FormatDuration(req.Minutes),
		Reason:        req.Reason,
		Status:        string(req.Status),
		ReviewedBy:    req.ReviewedBy,
		ReviewNote:    req.ReviewNote,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
	}
	if req.StaffName != nil {
		resp.StaffName = *req.StaffName
	}
	if req.ReviewedAt != nil {
		t := req.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &t
	}
	return resp
}

// Create implements overtime.RequestService. The duration is normalized
// on entry: whichever unit the employee typed, the stored record carries
// both minutes and rounded hours.
func (o *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateRequestRequest) (overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RequestResponse{}, err
	}

	st, err := o.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	if !st.IsActive {
		return overtime.RequestResponse{}, staff.ErrStaffInactive
	}

	var summary overtime.Summary
	if req.Minutes != nil {
		summary = overtime.FromMinutes(*req.Minutes, decimal.Zero)
	} else {
		summary = overtime.FromHours(*req.Hours, decimal.Zero)
	}
	if summary.TotalMinutes == 0 {
		return overtime.RequestResponse{}, overtime.ErrDurationRequired
	}

	date, _ := validator.IsValidDate(req.Date)

	entry := overtime.Request{
		StaffID: req.StaffID,
		Date:    date,
		Minutes: summary.TotalMinutes,
		Hours:   summary.TotalHours,
		Reason:  req.Reason,
		Status:  overtime.RequestStatusPending,
	}

	created, err := o.RequestRepository.Create(ctx, entry)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	created.StaffName = &st.Name

	return toResponse(created), nil
}

// Get implements overtime.RequestService.
func (o *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.RequestResponse, error) {
	req, err := o.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	return toResponse(req), nil
}

// List implements overtime.RequestService.
func (o *OvertimeServiceImpl) List(ctx context.Context, filter overtime.RequestFilter) (overtime.ListRequestResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := o.RequestRepository.List(ctx, filter)
	if err != nil {
		return overtime.ListRequestResponse{}, err
	}

	data := make([]overtime.RequestResponse, 0, len(records))
	for _, req := range records {
		data = append(data, toResponse(req))
	}

	return overtime.ListRequestResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (o *OvertimeServiceImpl) review(ctx context.Context, id string, status overtime.RequestStatus, note *string) (overtime.RequestResponse, error) {
	req, err := o.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.RequestResponse{}, err
	}
	if req.Status != overtime.RequestStatusPending {
		return overtime.RequestResponse{}, overtime.ErrRequestAlreadyProcessed
	}

	reviewer, err := reviewerFromContext(ctx)
	if err != nil {
		return overtime.RequestResponse{}, err
	}

	now := time.Now()
	req.Status = status
	req.ReviewedBy = &reviewer
	req.ReviewedAt = &now
	req.ReviewNote = note

	if err := o.RequestRepository.UpdateStatus(ctx, req); err != nil {
		return overtime.RequestResponse{}, err
	}

	return toResponse(req), nil
}

// Approve implements overtime.RequestService.
func (o *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.RequestResponse, error) {
	return o.review(ctx, id, overtime.RequestStatusApproved, nil)
}

// Reject implements overtime.RequestService.
func (o *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.RejectRequestRequest) (overtime.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RequestResponse{}, err
	}
	return o.review(ctx, req.ID, overtime.RequestStatusRejected, &req.Reason)
}

// Delete implements overtime.RequestService. Processed requests are part
// of the audit trail and stay put.
func (o *OvertimeServiceImpl) Delete(ctx context.Context, id string) error {
	req, err := o.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != overtime.RequestStatusPending {
		return overtime.ErrRequestAlreadyProcessed
	}
	return o.RequestRepository.Delete(ctx, id)
}
