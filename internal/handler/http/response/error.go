package response

import (
	"errors"
	"net/http"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/domain/auth"
	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/holiday"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
	"github.com/wagetrack/labour-backend-go/internal/domain/setting"
	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/payment"
	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or PIN")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username is already taken")
	case errors.Is(err, user.ErrHasAttendance):
		Conflict(w, "Labour has attendance records, deactivate instead")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Cannot record attendance for a future date", nil)
	case errors.Is(err, attendance.ErrDateNotAllowed):
		BadRequest(w, "Check-in is only allowed for today or yesterday", nil)
	case errors.Is(err, attendance.ErrCutoffPassed):
		BadRequest(w, "Yesterday's check-in window has closed", nil)
	case errors.Is(err, attendance.ErrWageNotSet):
		BadRequest(w, "Monthly wage is not set, contact your manager", nil)
	case errors.Is(err, attendance.ErrAlreadyVerified):
		Conflict(w, "Attendance record is already verified")
	case errors.Is(err, attendance.ErrSiteClientMismatch):
		BadRequest(w, "Site does not belong to the selected client", nil)

	// Wage engine errors
	case errors.Is(err, payment.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be in HH:MM format", nil)
	case errors.Is(err, payment.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	// Master data errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "A client with this name already exists")
	case errors.Is(err, client.ErrClientHasAttendance):
		Conflict(w, "Client has attendance records and cannot be deleted")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteHasAttendance):
		Conflict(w, "Site has attendance records and cannot be deleted")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, incentive.ErrRuleNotFound):
		NotFound(w, "Incentive rule not found")
	case errors.Is(err, setting.ErrUnknownKey):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
