package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/report"
	"github.com/wagetrack/labour-backend-go/internal/pkg/uaetime"
	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	reportRepo     report.Repository
	attendanceRepo attendance.Repository
	incentiveRepo  incentive.Repository
}

func NewReportService(
	reportRepo report.Repository,
	attendanceRepo attendance.Repository,
	incentiveRepo incentive.Repository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		incentiveRepo:  incentiveRepo,
	}
}

// Daily returns every record for one date with a totals line.
func (s *ReportServiceImpl) Daily(ctx context.Context, date string, clientID, siteID *string) ([]attendance.Response, report.DailyTotals, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, report.DailyTotals{}, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}

	records, err := s.attendanceRepo.ListByDate(ctx, attendance.ListFilter{Date: date, ClientID: clientID, SiteID: siteID})
	if err != nil {
		return nil, report.DailyTotals{}, err
	}

	return attendance.ToResponses(records), sumTotals(records), nil
}

// Monthly returns every record in a month with a totals line.
func (s *ReportServiceImpl) Monthly(ctx context.Context, month string) ([]attendance.Response, report.DailyTotals, error) {
	startDate, endDate, err := monthRange(month)
	if err != nil {
		return nil, report.DailyTotals{}, err
	}

	records, err := s.attendanceRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, report.DailyTotals{}, err
	}

	return attendance.ToResponses(records), sumTotals(records), nil
}

// Payroll returns the per-labour wage aggregation for a month.
func (s *ReportServiceImpl) Payroll(ctx context.Context, month string) ([]report.PayrollRow, error) {
	startDate, endDate, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	return s.reportRepo.PayrollSummary(ctx, startDate, endDate)
}

// PayrollWithIncentives layers the active incentive rules over the payroll
// aggregation. Rules are evaluated per labour against their month with the
// rule's client.
func (s *ReportServiceImpl) PayrollWithIncentives(ctx context.Context, month string) ([]report.PayrollWithIncentives, error) {
	startDate, endDate, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	payroll, err := s.reportRepo.PayrollSummary(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rules, err := s.incentiveRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	work, err := s.reportRepo.ClientWorkSummary(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	type workKey struct{ labourID, clientID string }
	workByKey := make(map[workKey]report.ClientWork, len(work))
	for _, w := range work {
		workByKey[workKey{w.LabourID, w.ClientID}] = w
	}

	out := make([]report.PayrollWithIncentives, 0, len(payroll))
	for _, row := range payroll {
		entry := report.PayrollWithIncentives{PayrollRow: row, Incentives: []report.IncentiveDetail{}}

		total := decimal.Zero
		for _, rule := range rules {
			w := workByKey[workKey{row.LabourID, rule.ClientID}]
			amount := incentive.Evaluate(rule, w.DaysWorked, w.SundayDays)
			if amount == 0 {
				continue
			}

			clientName := ""
			if rule.ClientName != nil {
				clientName = *rule.ClientName
			}
			entry.Incentives = append(entry.Incentives, report.IncentiveDetail{
				RuleID:     rule.ID,
				RuleName:   rule.Name,
				ClientID:   rule.ClientID,
				ClientName: clientName,
				Amount:     amount,
			})
			total = total.Add(decimal.NewFromFloat(amount))
		}

		entry.IncentiveTotal, _ = total.Round(2).Float64()
		entry.GrandTotal, _ = total.Add(decimal.NewFromFloat(row.TotalPay)).Round(2).Float64()
		out = append(out, entry)
	}

	return out, nil
}

// LabourMonth returns one labour's records and summary for a month.
func (s *ReportServiceImpl) LabourMonth(ctx context.Context, labourID, month string) ([]attendance.Response, attendance.MonthSummary, error) {
	startDate, endDate, err := monthRange(month)
	if err != nil {
		return nil, attendance.MonthSummary{}, err
	}

	records, err := s.attendanceRepo.ListByLabourRange(ctx, labourID, startDate, endDate)
	if err != nil {
		return nil, attendance.MonthSummary{}, err
	}

	summary, err := s.attendanceRepo.MonthSummary(ctx, labourID, startDate, endDate)
	if err != nil {
		return nil, attendance.MonthSummary{}, err
	}

	return attendance.ToResponses(records), summary, nil
}

// ClientReport aggregates a date range per client.
func (s *ReportServiceImpl) ClientReport(ctx context.Context, startDate, endDate string) ([]report.ClientBreakdown, error) {
	startDate, endDate, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.ClientBreakdown(ctx, startDate, endDate)
}

// SiteReport aggregates a date range per site.
func (s *ReportServiceImpl) SiteReport(ctx context.Context, startDate, endDate string) ([]report.SiteBreakdown, error) {
	startDate, endDate, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.reportRepo.SiteBreakdown(ctx, startDate, endDate)
}

// Analytics returns the admin overview for a date range, defaulting to the
// current month to date.
func (s *ReportServiceImpl) Analytics(ctx context.Context, startDate, endDate string) (report.Analytics, error) {
	startDate, endDate, err := normalizeRange(startDate, endDate)
	if err != nil {
		return report.Analytics{}, err
	}
	return s.reportRepo.Analytics(ctx, startDate, endDate)
}

func sumTotals(records []attendance.Attendance) report.DailyTotals {
	hours, regular, ot, total := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range records {
		hours = hours.Add(decimal.NewFromFloat(r.HoursWorked))
		regular = regular.Add(decimal.NewFromFloat(r.RegularPay))
		ot = ot.Add(decimal.NewFromFloat(r.OTPay))
		total = total.Add(decimal.NewFromFloat(r.TotalPay))
	}

	t := report.DailyTotals{Records: len(records)}
	t.TotalHours, _ = hours.Round(2).Float64()
	t.RegularPay, _ = regular.Round(2).Float64()
	t.OTPay, _ = ot.Round(2).Float64()
	t.TotalPay, _ = total.Round(2).Float64()
	return t
}

// monthRange expands "YYYY-MM" to its first and last day.
func monthRange(month string) (string, string, error) {
	if !validator.IsValidMonth(month) {
		return "", "", validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}

	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", validator.ValidationErrors{{Field: "month", Message: "month must be YYYY-MM"}}
	}
	last := first.AddDate(0, 1, -1)

	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}

func normalizeRange(startDate, endDate string) (string, string, error) {
	if startDate == "" {
		startDate = uaetime.MonthStart()
	}
	if endDate == "" {
		endDate = uaetime.Today()
	}
	if _, ok := validator.IsValidDate(startDate); !ok {
		return "", "", validator.ValidationErrors{{Field: "start_date", Message: "start date must be YYYY-MM-DD"}}
	}
	if _, ok := validator.IsValidDate(endDate); !ok {
		return "", "", validator.ValidationErrors{{Field: "end_date", Message: "end date must be YYYY-MM-DD"}}
	}
	if endDate < startDate {
		return "", "", validator.ValidationErrors{{Field: "end_date", Message: "end date must not be before start date"}}
	}
	return startDate, endDate, nil
}
