package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pertashop/backoffice-go/internal/domain/attendance"
	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/pertashop/backoffice-go/internal/domain/shift"
	"github.com/pertashop/backoffice-go/internal/domain/staff"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	StaffRepository staff.Repository
}

func NewAttendanceService(repo attendance.Repository, staffRepo staff.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		Repository:      repo,
		StaffRepository: staffRepo,
	}
}

// normalizeStr treats an explicit empty string as "no value".
func normalizeStr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func parseClockPtr(s *string) *shift.ClockTime {
	if s == nil {
		return nil
	}
	t, err := shift.ParseClock(*s)
	if err != nil {
		return nil
	}
	return &t
}

// derive recomputes the shift tag and the lateness/overtime minutes from
// the raw clock values. The minutes stay zero while either clock is
// missing; the record is simply not computable yet.
func derive(att *attendance.Attendance) error {
	checkIn := parseClockPtr(att.CheckIn)
	checkOut := parseClockPtr(att.CheckOut)

	// Classify from check-in when no explicit shift was given.
	if (att.ShiftTag == nil || *att.ShiftTag == "") && checkIn != nil {
		tag := shift.Classify(*checkIn).String()
		att.ShiftTag = &tag
	}

	att.LateMinutes = 0
	att.OvertimeMinutes = 0

	if att.ShiftTag == nil {
		return nil
	}

	s, err := shift.Parse(*att.ShiftTag)
	if err != nil {
		return err
	}

	res, err := shift.ComputeLatenessOvertime(checkIn, checkOut, s)
	if err != nil {
		if errors.Is(err, shift.ErrIncompleteInput) {
			return nil
		}
		return err
	}

	att.LateMinutes = res.LatenessMinutes
	att.OvertimeMinutes = res.OvertimeMinutes
	return nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                att.ID,
		StaffID:           att.StaffID,
		Date:              att.Date.Format("2006-01-02"),
		CheckIn:           att.CheckIn,
		CheckOut:          att.CheckOut,
		Shift:             att.ShiftTag,
		LateMinutes:       att.LateMinutes,
		OvertimeMinutes:   att.OvertimeMinutes,
		OvertimeFormatted: overtime.FormatDuration(att.OvertimeMinutes),
		Status:            string(att.Status),
		Notes:             att.Notes,
		CreatedAt:         att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         att.UpdatedAt.Format(time.RFC3339),
	}
	if att.StaffName != nil {
		resp.StaffName = *att.StaffName
	}
	return resp
}

// Create implements attendance.Service.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	st, err := a.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !st.IsActive {
		return attendance.AttendanceResponse{}, staff.ErrStaffInactive
	}

	date, _ := validator.IsValidDate(req.Date)

	if _, err := a.Repository.GetByStaffDate(ctx, req.StaffID, date); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyRecorded
	} else if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	att := attendance.Attendance{
		StaffID:  req.StaffID,
		Date:     date,
		CheckIn:  normalizeStr(req.CheckIn),
		CheckOut: normalizeStr(req.CheckOut),
		ShiftTag: normalizeStr(req.ShiftTag),
		Notes:    req.Notes,
		Status:   attendance.StatusUnset,
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	} else if att.CheckIn != nil {
		att.Status = attendance.StatusPresent
	}

	if err := derive(&att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := a.Repository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.StaffName = &st.Name

	return toResponse(created), nil
}

// Get implements attendance.Service.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(att), nil
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := a.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		data = append(data, toResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements attendance.Service. Any change to the clocks or the
// shift rederives the minute counts; they are never patched directly.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		date, ok := validator.IsValidDate(*req.Date)
		if !ok {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid date: %q", *req.Date)
		}
		att.Date = date
	}
	if req.CheckIn != nil {
		att.CheckIn = normalizeStr(req.CheckIn)
	}
	if req.CheckOut != nil {
		att.CheckOut = normalizeStr(req.CheckOut)
	}
	if req.ShiftTag != nil {
		att.ShiftTag = normalizeStr(req.ShiftTag)
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	if err := derive(&att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.Repository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// Delete implements attendance.Service.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return a.Repository.Delete(ctx, id)
}

// SummarizeMonth implements attendance.Service.
func (a *AttendanceServiceImpl) SummarizeMonth(ctx context.Context, month, year int) ([]attendance.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}
	return a.Repository.SummarizeMonth(ctx, month, year, nil)
}
