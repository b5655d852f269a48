package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateEntry     = errors.New("attendance already recorded for this date")
	ErrFutureDate         = errors.New("cannot record attendance for a future date")
	ErrDateNotAllowed     = errors.New("check-in is only allowed for today or yesterday")
	ErrCutoffPassed       = errors.New("yesterday's check-in window has closed")
	ErrWageNotSet         = errors.New("monthly wage is not set, contact your manager")
	ErrAlreadyVerified    = errors.New("attendance record is already verified")
	ErrSiteClientMismatch = errors.New("site does not belong to the selected client")
)
