package staff

import (
	"context"
	"time"

	"github.com/pertashop/backoffice-go/internal/domain/staff"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

type StaffServiceImpl struct {
	staff.Repository
}

func NewStaffService(repo staff.Repository) staff.Service {
	return &StaffServiceImpl{Repository: repo}
}

func toResponse(s staff.Staff) staff.StaffResponse {
	resp := staff.StaffResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Phone:              s.Phone,
		Role:               s.Role,
		BaseSalary:         s.BaseSalary,
		OvertimeHourlyRate: s.OvertimeHourlyRate,
		IsActive:           s.IsActive,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}
	if s.JoinDate != nil {
		d := s.JoinDate.Format("2006-01-02")
		resp.JoinDate = &d
	}
	return resp
}

// Create implements staff.Service.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	newStaff := staff.Staff{
		Name:               req.Name,
		Phone:              req.Phone,
		Role:               req.Role,
		BaseSalary:         req.BaseSalary,
		OvertimeHourlyRate: req.OvertimeHourlyRate,
		IsActive:           true,
	}
	if req.JoinDate != nil {
		d, _ := validator.IsValidDate(*req.JoinDate)
		newStaff.JoinDate = &d
	}

	created, err := s.Repository.Create(ctx, newStaff)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements staff.Service.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	st, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return toResponse(st), nil
}

// List implements staff.Service.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) (staff.ListStaffResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return staff.ListStaffResponse{}, err
	}

	data := make([]staff.StaffResponse, 0, len(records))
	for _, st := range records {
		data = append(data, toResponse(st))
	}

	return staff.ListStaffResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements staff.Service.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	st, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Phone != nil {
		st.Phone = req.Phone
	}
	if req.Role != nil {
		st.Role = *req.Role
	}
	if req.BaseSalary != nil {
		st.BaseSalary = req.BaseSalary
	}
	if req.OvertimeHourlyRate != nil {
		st.OvertimeHourlyRate = req.OvertimeHourlyRate
	}
	if req.JoinDate != nil {
		d, _ := validator.IsValidDate(*req.JoinDate)
		st.JoinDate = &d
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.Repository.Update(ctx, st); err != nil {
		return staff.StaffResponse{}, err
	}

	return toResponse(st), nil
}

// Deactivate implements staff.Service. Deactivated staff keep their
// history but are excluded from payroll generation.
func (s *StaffServiceImpl) Deactivate(ctx context.Context, id string) error {
	st, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	st.IsActive = false
	return s.Repository.Update(ctx, st)
}

// Delete implements staff.Service.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}
