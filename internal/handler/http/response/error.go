package response

import (
	"errors"
	"net/http"

	"github.com/pertashop/backoffice-go/internal/domain/attendance"
	"github.com/pertashop/backoffice-go/internal/domain/auth"
	"github.com/pertashop/backoffice-go/internal/domain/deposit"
	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/pertashop/backoffice-go/internal/domain/payroll"
	"github.com/pertashop/backoffice-go/internal/domain/receivable"
	"github.com/pertashop/backoffice-go/internal/domain/shift"
	"github.com/pertashop/backoffice-go/internal/domain/staff"
	"github.com/pertashop/backoffice-go/internal/domain/store"
	"github.com/pertashop/backoffice-go/internal/domain/user"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffAlreadyExists):
		Conflict(w, "Staff with the same name already exists")
	case errors.Is(err, staff.ErrStaffInactive):
		BadRequest(w, "Staff is inactive", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyRecorded):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, shift.ErrUnknownShift):
		BadRequest(w, "Unknown shift", nil)
	case errors.Is(err, shift.ErrInvalidClock):
		BadRequest(w, "Invalid clock time", nil)
	case errors.Is(err, shift.ErrIncompleteInput):
		BadRequest(w, "Check-in and check-out are both required", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrDurationRequired):
		BadRequest(w, "Overtime duration is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record is already paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrStaffHasNoSalary):
		BadRequest(w, "Staff has no base salary configured", nil)

	// Deposit domain errors
	case errors.Is(err, deposit.ErrDepositNotFound):
		NotFound(w, "Deposit record not found")

	// Receivable domain errors
	case errors.Is(err, receivable.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, receivable.ErrCustomerHasOutstanding):
		Conflict(w, "Customer still has outstanding receivables")
	case errors.Is(err, receivable.ErrReceivableNotFound):
		NotFound(w, "Receivable not found")
	case errors.Is(err, receivable.ErrReceivableAlreadyPaid):
		Conflict(w, "Receivable is already fully paid")
	case errors.Is(err, receivable.ErrPaymentExceedsBalance):
		BadRequest(w, "Payment amount exceeds outstanding balance", nil)

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store profile not found")
	case errors.Is(err, store.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, store.ErrProductAlreadyExists):
		Conflict(w, "Product with the same SKU already exists")
	case errors.Is(err, store.ErrInsufficientStock):
		BadRequest(w, "Insufficient stock for this movement", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
