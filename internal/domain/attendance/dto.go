package attendance

import (
	"github.com/pertashop/backoffice-go/internal/domain/shift"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	StaffID  string  `json:"staff_id"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	ShiftTag *string `json:"shift,omitempty"` // Classified from check-in when omitted
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func validClock(s *string) bool {
	if s == nil || *s == "" {
		return true
	}
	_, err := shift.ParseClock(*s)
	return err == nil
}

func validShiftTag(s *string) bool {
	if s == nil || *s == "" {
		return true
	}
	_, err := shift.Parse(*s)
	return err == nil
}

func validStatus(s *string) bool {
	if s == nil {
		return true
	}
	return validator.IsInSlice(*s, []string{
		string(StatusPresent), string(StatusLeave), string(StatusAbsent), string(StatusUnset),
	})
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid time (HH:MM)"})
	}
	if !validClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid time (HH:MM)"})
	}
	if !validShiftTag(r.ShiftTag) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be morning, afternoon or night"})
	}
	if !validStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, leave or absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string
	Date     *string `json:"date,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	ShiftTag *string `json:"shift,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if !validClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid time (HH:MM)"})
	}
	if !validClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid time (HH:MM)"})
	}
	if !validShiftTag(r.ShiftTag) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be morning, afternoon or night"})
	}
	if !validStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, leave or absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                string  `json:"id"`
	StaffID           string  `json:"staff_id"`
	StaffName         string  `json:"staff_name"`
	Date              string  `json:"date"`
	CheckIn           *string `json:"check_in,omitempty"`
	CheckOut          *string `json:"check_out,omitempty"`
	Shift             *string `json:"shift,omitempty"`
	LateMinutes       int     `json:"late_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"`
	OvertimeFormatted string  `json:"overtime_formatted"`
	Status            string  `json:"status"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type AttendanceFilter struct {
	StaffID *string
	Month   *int
	Year    *int
	Page    int
	Limit   int
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
