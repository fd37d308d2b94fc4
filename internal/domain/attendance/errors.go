package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyRecorded    = errors.New("attendance already recorded for this staff member on this date")
)
