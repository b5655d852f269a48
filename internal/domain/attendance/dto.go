package attendance

import (
	"github.com/wagetrack/labour-backend-go/internal/payment"
	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

// MaxShiftHours caps a single shift. Anything longer is a data-entry mistake,
// usually a swapped start/end pair.
const MaxShiftHours = 18

// ValidateShift checks a start/end pair before it is persisted. Equal times
// are rejected here even though the wage engine would compute them as 24h.
func ValidateShift(startTime, endTime string) *validator.ValidationError {
	if !validator.IsValidClockTime(startTime) {
		return &validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM"}
	}
	if !validator.IsValidClockTime(endTime) {
		return &validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM"}
	}

	startMin, err := payment.ParseTimeToMinutes(startTime)
	if err != nil {
		return &validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM"}
	}
	endMin, err := payment.ParseTimeToMinutes(endTime)
	if err != nil {
		return &validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM"}
	}
	if startMin == endMin {
		return &validator.ValidationError{Field: "end_time", Message: "start and end time cannot be the same"}
	}

	minutes, err := payment.ShiftMinutes(startTime, endTime)
	if err != nil {
		return &validator.ValidationError{Field: "end_time", Message: "invalid shift times"}
	}
	if minutes > MaxShiftHours*60 {
		return &validator.ValidationError{Field: "end_time", Message: "shift cannot exceed 18 hours"}
	}
	return nil
}

type CheckInRequest struct {
	Date      string  `json:"date"`
	ClientID  string  `json:"client_id"`
	SiteID    string  `json:"site_id"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client is required"})
	}
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "site is required"})
	}
	if shiftErr := ValidateShift(r.StartTime, r.EndTime); shiftErr != nil {
		errs = append(errs, *shiftErr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ClientID  *string `json:"client_id"`
	SiteID    *string `json:"site_id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClientID != nil && validator.IsEmpty(*r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client cannot be empty"})
	}
	if r.SiteID != nil && validator.IsEmpty(*r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "site cannot be empty"})
	}
	// Shift times are validated against the merged record in the service,
	// since either side may come from the stored row.
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPresentRequest struct {
	LabourID  string  `json:"labour_id"`
	Date      string  `json:"date"`
	ClientID  string  `json:"client_id"`
	SiteID    string  `json:"site_id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`
}

func (r *MarkPresentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: "labour is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client is required"})
	}
	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "site is required"})
	}
	// Both times or neither; when omitted the configured defaults apply.
	if (r.StartTime == nil) != (r.EndTime == nil) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start and end time must be provided together"})
	}
	if r.StartTime != nil && r.EndTime != nil {
		if shiftErr := ValidateShift(*r.StartTime, *r.EndTime); shiftErr != nil {
			errs = append(errs, *shiftErr)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAbsentRequest struct {
	LabourID string `json:"labour_id"`
	Date     string `json:"date"`
}

func (r *MarkAbsentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabourID) {
		errs = append(errs, validator.ValidationError{Field: "labour_id", Message: "labour is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkVerifyRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkVerifyRequest) Validate() error {
	if len(r.IDs) == 0 {
		return validator.ValidationErrors{{Field: "ids", Message: "at least one attendance id is required"}}
	}
	return nil
}

type Response struct {
	ID          string  `json:"id"`
	LabourID    string  `json:"labour_id"`
	Date        string  `json:"date"`
	ClientID    string  `json:"client_id"`
	SiteID      string  `json:"site_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	HoursWorked float64 `json:"hours_worked"`
	RegularPay  float64 `json:"regular_pay"`
	OTPay       float64 `json:"ot_pay"`
	TotalPay    float64 `json:"total_pay"`
	IsSunday    bool    `json:"is_sunday"`
	IsHoliday   bool    `json:"is_holiday"`
	Notes       *string `json:"notes,omitempty"`

	AdminVerified bool    `json:"admin_verified"`
	VerifiedBy    *string `json:"verified_by,omitempty"`
	VerifiedAt    *string `json:"verified_at,omitempty"`

	LabourName        *string `json:"labour_name,omitempty"`
	LabourDesignation *string `json:"labour_designation,omitempty"`
	ClientName        *string `json:"client_name,omitempty"`
	SiteName          *string `json:"site_name,omitempty"`
}

func ToResponse(a Attendance) Response {
	resp := Response{
		ID:                a.ID,
		LabourID:          a.LabourID,
		Date:              a.Date,
		ClientID:          a.ClientID,
		SiteID:            a.SiteID,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		HoursWorked:       a.HoursWorked,
		RegularPay:        a.RegularPay,
		OTPay:             a.OTPay,
		TotalPay:          a.TotalPay,
		IsSunday:          a.IsSunday,
		IsHoliday:         a.IsHoliday,
		Notes:             a.Notes,
		AdminVerified:     a.AdminVerified,
		VerifiedBy:        a.VerifiedBy,
		LabourName:        a.LabourName,
		LabourDesignation: a.LabourDesignation,
		ClientName:        a.ClientName,
		SiteName:          a.SiteName,
	}
	if a.VerifiedAt != nil {
		at := a.VerifiedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.VerifiedAt = &at
	}
	return resp
}

func ToResponses(records []Attendance) []Response {
	out := make([]Response, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}

// BoardRow is one labour's line on the daily present/absent board.
type BoardRow struct {
	LabourID    string    `json:"labour_id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Designation *string   `json:"designation,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Status      string    `json:"status"`
	Attendance  *Response `json:"attendance,omitempty"`
}

// Board statuses. "pending" means no record yet and the day is still open.
const (
	BoardStatusPresent = "present"
	BoardStatusAbsent  = "absent"
	BoardStatusPending = "pending"
)

type BoardSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Pending int `json:"pending"`
}

type Board struct {
	Date       string       `json:"date"`
	AutoAbsent bool         `json:"auto_absent"`
	Summary    BoardSummary `json:"summary"`
	Labours    []BoardRow   `json:"labours"`
}

// MonthSummary aggregates one labour's month, computed in SQL.
type MonthSummary struct {
	DaysWorked    int     `json:"days_worked"`
	TotalHours    float64 `json:"total_hours"`
	RegularPay    float64 `json:"regular_pay"`
	OTPay         float64 `json:"ot_pay"`
	TotalEarnings float64 `json:"total_earnings"`
	SundayDays    int     `json:"sunday_days"`
	HolidayDays   int     `json:"holiday_days"`
}

type Dashboard struct {
	Designation     *string      `json:"designation,omitempty"`
	MonthlyWage     float64      `json:"monthly_wage"`
	Today           *Response    `json:"today,omitempty"`
	Yesterday       *Response    `json:"yesterday,omitempty"`
	YesterdayClosed bool         `json:"yesterday_closed"`
	MonthSummary    MonthSummary `json:"month_summary"`
}

type EstimateRequest struct {
	MonthlyWage float64 `json:"monthly_wage"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Date        string  `json:"date"`
	Designation string  `json:"designation"`
}
