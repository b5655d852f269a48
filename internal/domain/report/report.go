package report

import (
	"context"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
)

// DailyTotals is the roll-up line under a daily attendance listing.
type DailyTotals struct {
	Records    int     `json:"records"`
	TotalHours float64 `json:"total_hours"`
	RegularPay float64 `json:"regular_pay"`
	OTPay      float64 `json:"ot_pay"`
	TotalPay   float64 `json:"total_pay"`
}

// PayrollRow is one labour's aggregated month.
type PayrollRow struct {
	LabourID    string  `json:"labour_id"`
	Username    string  `json:"username"`
	LabourName  string  `json:"labour_name"`
	Designation *string `json:"designation,omitempty"`
	MonthlyWage float64 `json:"monthly_wage"`
	DaysWorked  int     `json:"days_worked"`
	TotalHours  float64 `json:"total_hours"`
	RegularPay  float64 `json:"regular_pay"`
	OTPay       float64 `json:"ot_pay"`
	TotalPay    float64 `json:"total_pay"`
	SundayDays  int     `json:"sunday_days"`
	HolidayDays int     `json:"holiday_days"`
}

// IncentiveDetail explains one fired rule on a payroll row.
type IncentiveDetail struct {
	RuleID     string  `json:"rule_id"`
	RuleName   string  `json:"rule_name"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Amount     float64 `json:"amount"`
}

// PayrollWithIncentives extends a payroll row with evaluated incentive rules.
type PayrollWithIncentives struct {
	PayrollRow
	Incentives     []IncentiveDetail `json:"incentives"`
	IncentiveTotal float64           `json:"incentive_total"`
	GrandTotal     float64           `json:"grand_total"`
}

// ClientWork is one labour's month with one client, the unit incentive rules
// are evaluated against.
type ClientWork struct {
	LabourID   string
	ClientID   string
	DaysWorked int
	SundayDays int
}

// ClientBreakdown aggregates a date range per client.
type ClientBreakdown struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Labours    int     `json:"labours"`
	DaysWorked int     `json:"days_worked"`
	TotalHours float64 `json:"total_hours"`
	TotalPay   float64 `json:"total_pay"`
}

// SiteBreakdown aggregates a date range per site.
type SiteBreakdown struct {
	SiteID     string  `json:"site_id"`
	SiteName   string  `json:"site_name"`
	ClientName string  `json:"client_name"`
	Labours    int     `json:"labours"`
	DaysWorked int     `json:"days_worked"`
	TotalHours float64 `json:"total_hours"`
	TotalPay   float64 `json:"total_pay"`
}

// TopLabour is one line of the analytics leaderboard.
type TopLabour struct {
	LabourID   string  `json:"labour_id"`
	LabourName string  `json:"labour_name"`
	DaysWorked int     `json:"days_worked"`
	TotalHours float64 `json:"total_hours"`
	TotalPay   float64 `json:"total_pay"`
}

// Analytics is the admin overview for a date range.
type Analytics struct {
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	ActiveLabours  int               `json:"active_labours"`
	PresentToday   int               `json:"present_today"`
	TotalRecords   int               `json:"total_records"`
	UniqueWorkDays int               `json:"unique_work_days"`
	TotalHours     float64           `json:"total_hours"`
	TotalWages     float64           `json:"total_wages"`
	RegularPay     float64           `json:"regular_pay"`
	TotalOT        float64           `json:"total_ot"`
	SundayRecords  int               `json:"sunday_records"`
	HolidayRecords int               `json:"holiday_records"`
	ByClient       []ClientBreakdown `json:"by_client"`
	TopLabours     []TopLabour       `json:"top_labours"`
}

type Service interface {
	Daily(ctx context.Context, date string, clientID, siteID *string) ([]attendance.Response, DailyTotals, error)
	Monthly(ctx context.Context, month string) ([]attendance.Response, DailyTotals, error)
	Payroll(ctx context.Context, month string) ([]PayrollRow, error)
	PayrollWithIncentives(ctx context.Context, month string) ([]PayrollWithIncentives, error)
	LabourMonth(ctx context.Context, labourID, month string) ([]attendance.Response, attendance.MonthSummary, error)
	ClientReport(ctx context.Context, startDate, endDate string) ([]ClientBreakdown, error)
	SiteReport(ctx context.Context, startDate, endDate string) ([]SiteBreakdown, error)
	Analytics(ctx context.Context, startDate, endDate string) (Analytics, error)
}

// Repository runs the aggregation queries. All aggregation happens in SQL
// over the stored pay columns; nothing is recomputed from raw shifts.
type Repository interface {
	PayrollSummary(ctx context.Context, startDate, endDate string) ([]PayrollRow, error)
	ClientWorkSummary(ctx context.Context, startDate, endDate string) ([]ClientWork, error)
	ClientBreakdown(ctx context.Context, startDate, endDate string) ([]ClientBreakdown, error)
	SiteBreakdown(ctx context.Context, startDate, endDate string) ([]SiteBreakdown, error)
	Analytics(ctx context.Context, startDate, endDate string) (Analytics, error)
}
