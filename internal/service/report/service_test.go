package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/report"
	"github.com/wagetrack/labour-backend-go/internal/pkg/uaetime"
)

type stubReportRepo struct {
	report.Repository
	payroll   []report.PayrollRow
	work      []report.ClientWork
	analytics report.Analytics

	gotStart, gotEnd string
}

func (s *stubReportRepo) PayrollSummary(ctx context.Context, startDate, endDate string) ([]report.PayrollRow, error) {
	return s.payroll, nil
}

func (s *stubReportRepo) ClientWorkSummary(ctx context.Context, startDate, endDate string) ([]report.ClientWork, error) {
	return s.work, nil
}

func (s *stubReportRepo) Analytics(ctx context.Context, startDate, endDate string) (report.Analytics, error) {
	s.gotStart, s.gotEnd = startDate, endDate
	s.analytics.StartDate, s.analytics.EndDate = startDate, endDate
	return s.analytics, nil
}

type stubIncentiveRepo struct {
	incentive.Repository
	rules []incentive.Rule
}

func (s *stubIncentiveRepo) ListActive(ctx context.Context) ([]incentive.Rule, error) {
	return s.rules, nil
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "thirty one day month", month: "2026-07", wantStart: "2026-07-01", wantEnd: "2026-07-31"},
		{name: "february", month: "2026-02", wantStart: "2026-02-01", wantEnd: "2026-02-28"},
		{name: "leap february", month: "2024-02", wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "thirteenth month", month: "2026-13", wantErr: true},
		{name: "not a month", month: "july", wantErr: true},
		{name: "empty", month: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := monthRange(tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	t.Run("explicit range passes through", func(t *testing.T) {
		start, end, err := normalizeRange("2026-03-01", "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", start)
		assert.Equal(t, "2026-03-15", end)
	})

	t.Run("defaults to month to date", func(t *testing.T) {
		start, end, err := normalizeRange("", "")
		require.NoError(t, err)
		assert.Equal(t, uaetime.MonthStart(), start)
		assert.Equal(t, uaetime.Today(), end)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, _, err := normalizeRange("2026-03-15", "2026-03-01")
		assert.Error(t, err)
	})

	t.Run("bad start date rejected", func(t *testing.T) {
		_, _, err := normalizeRange("15-03-2026", "2026-03-20")
		assert.Error(t, err)
	})
}

func TestSumTotals(t *testing.T) {
	records := []attendance.Attendance{
		{HoursWorked: 10, RegularPay: 33.33, OTPay: 0, TotalPay: 33.33},
		{HoursWorked: 12.5, RegularPay: 33.33, OTPay: 33.34, TotalPay: 66.67},
	}

	totals := sumTotals(records)
	assert.Equal(t, 2, totals.Records)
	assert.Equal(t, 22.5, totals.TotalHours)
	assert.Equal(t, 66.66, totals.RegularPay)
	assert.Equal(t, 33.34, totals.OTPay)
	assert.Equal(t, 100.0, totals.TotalPay)
}

func TestPayrollWithIncentives(t *testing.T) {
	ctx := context.Background()

	clientA := "client-a"
	clientB := "client-b"
	nameA := "Client A"

	reportRepo := &stubReportRepo{
		payroll: []report.PayrollRow{
			{LabourID: "lab-1", LabourName: "Ram", TotalPay: 1000, DaysWorked: 26},
			{LabourID: "lab-2", LabourName: "Shyam", TotalPay: 500, DaysWorked: 10},
		},
		work: []report.ClientWork{
			{LabourID: "lab-1", ClientID: clientA, DaysWorked: 20, SundayDays: 4},
			{LabourID: "lab-1", ClientID: clientB, DaysWorked: 6, SundayDays: 0},
			{LabourID: "lab-2", ClientID: clientA, DaysWorked: 10, SundayDays: 1},
		},
	}
	incentiveRepo := &stubIncentiveRepo{
		rules: []incentive.Rule{
			{
				ID: "rule-1", ClientID: clientA, ClientName: &nameA, Name: "Sunday bonus",
				RuleType: incentive.RuleSundayCount, Threshold: 2, Amount: 50,
				PerOccurrence: true, Active: true,
			},
			{
				ID: "rule-2", ClientID: clientB, Name: "Site completion",
				RuleType: incentive.RuleFixed, Amount: 100, Active: true,
			},
		},
	}

	svc := NewReportService(reportRepo, nil, incentiveRepo)

	rows, err := svc.PayrollWithIncentives(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// lab-1: 4 Sundays with client A fires twice at 50, plus the fixed 100
	// for working with client B.
	require.Len(t, rows[0].Incentives, 2)
	assert.Equal(t, 200.0, rows[0].IncentiveTotal)
	assert.Equal(t, 1200.0, rows[0].GrandTotal)
	assert.Equal(t, "Client A", rows[0].Incentives[0].ClientName)

	// lab-2: one Sunday is under the threshold and they never worked for
	// client B, so nothing fires.
	assert.Empty(t, rows[1].Incentives)
	assert.Equal(t, 0.0, rows[1].IncentiveTotal)
	assert.Equal(t, 500.0, rows[1].GrandTotal)
}

func TestAnalytics(t *testing.T) {
	repo := &stubReportRepo{analytics: report.Analytics{
		ActiveLabours:  12,
		PresentToday:   9,
		TotalRecords:   240,
		UniqueWorkDays: 22,
		TotalWages:     48000,
		RegularPay:     40000,
		TotalOT:        8000,
	}}
	svc := NewReportService(repo, nil, &stubIncentiveRepo{})

	result, err := svc.Analytics(context.Background(), "", "")
	require.NoError(t, err)

	// An empty range defaults to the current month to date.
	assert.Equal(t, uaetime.MonthStart(), repo.gotStart)
	assert.Equal(t, uaetime.Today(), repo.gotEnd)

	assert.Equal(t, 9, result.PresentToday)
	assert.Equal(t, 22, result.UniqueWorkDays)
	assert.Equal(t, 40000.0, result.RegularPay)
	assert.Equal(t, repo.gotStart, result.StartDate)
	assert.Equal(t, repo.gotEnd, result.EndDate)
}

func TestPayrollWithIncentivesBadMonth(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, nil, &stubIncentiveRepo{})

	_, err := svc.PayrollWithIncentives(context.Background(), "08-2026")
	assert.Error(t, err)
}
