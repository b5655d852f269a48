package postgresql

import (
	"context"
	"fmt"

	"github.com/wagetrack/labour-backend-go/internal/domain/report"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
	"github.com/wagetrack/labour-backend-go/internal/pkg/uaetime"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// PayrollSummary implements report.Repository. One row per labour who worked
// in the range, aggregated from the stored pay columns.
func (r *reportRepository) PayrollSummary(ctx context.Context, startDate, endDate string) ([]report.PayrollRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.id, u.username, u.name, u.designation, u.monthly_wage,
			COUNT(a.id),
			COALESCE(SUM(a.hours_worked), 0),
			COALESCE(SUM(a.regular_pay), 0),
			COALESCE(SUM(a.ot_pay), 0),
			COALESCE(SUM(a.total_pay), 0),
			COUNT(a.id) FILTER (WHERE a.is_sunday),
			COUNT(a.id) FILTER (WHERE a.is_holiday)
		FROM users u
		JOIN attendances a ON a.labour_id = u.id AND a.date BETWEEN $1 AND $2
		WHERE u.role = 'labour'
		GROUP BY u.id, u.username, u.name, u.designation, u.monthly_wage
		ORDER BY u.username
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to run payroll summary: %w", err)
	}
	defer rows.Close()

	var out []report.PayrollRow
	for rows.Next() {
		var row report.PayrollRow
		err := rows.Scan(
			&row.LabourID, &row.Username, &row.LabourName, &row.Designation, &row.MonthlyWage,
			&row.DaysWorked, &row.TotalHours, &row.RegularPay, &row.OTPay, &row.TotalPay,
			&row.SundayDays, &row.HolidayDays,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll rows: %w", err)
	}

	return out, nil
}

// ClientWorkSummary implements report.Repository. The per-labour, per-client
// day and Sunday counts that incentive rules are evaluated against.
func (r *reportRepository) ClientWorkSummary(ctx context.Context, startDate, endDate string) ([]report.ClientWork, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			labour_id, client_id,
			COUNT(*),
			COUNT(*) FILTER (WHERE is_sunday)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		GROUP BY labour_id, client_id
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to run client work summary: %w", err)
	}
	defer rows.Close()

	var out []report.ClientWork
	for rows.Next() {
		var w report.ClientWork
		if err := rows.Scan(&w.LabourID, &w.ClientID, &w.DaysWorked, &w.SundayDays); err != nil {
			return nil, fmt.Errorf("failed to scan client work row: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client work rows: %w", err)
	}

	return out, nil
}

// ClientBreakdown implements report.Repository.
func (r *reportRepository) ClientBreakdown(ctx context.Context, startDate, endDate string) ([]report.ClientBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			c.id, c.name,
			COUNT(DISTINCT a.labour_id),
			COUNT(a.id),
			COALESCE(SUM(a.hours_worked), 0),
			COALESCE(SUM(a.total_pay), 0)
		FROM clients c
		JOIN attendances a ON a.client_id = c.id AND a.date BETWEEN $1 AND $2
		GROUP BY c.id, c.name
		ORDER BY SUM(a.total_pay) DESC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to run client breakdown: %w", err)
	}
	defer rows.Close()

	var out []report.ClientBreakdown
	for rows.Next() {
		var b report.ClientBreakdown
		if err := rows.Scan(&b.ClientID, &b.ClientName, &b.Labours, &b.DaysWorked, &b.TotalHours, &b.TotalPay); err != nil {
			return nil, fmt.Errorf("failed to scan client breakdown: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client breakdown: %w", err)
	}

	return out, nil
}

// SiteBreakdown implements report.Repository.
func (r *reportRepository) SiteBreakdown(ctx context.Context, startDate, endDate string) ([]report.SiteBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.id, s.name, c.name,
			COUNT(DISTINCT a.labour_id),
			COUNT(a.id),
			COALESCE(SUM(a.hours_worked), 0),
			COALESCE(SUM(a.total_pay), 0)
		FROM sites s
		JOIN clients c ON c.id = s.client_id
		JOIN attendances a ON a.site_id = s.id AND a.date BETWEEN $1 AND $2
		GROUP BY s.id, s.name, c.name
		ORDER BY SUM(a.total_pay) DESC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to run site breakdown: %w", err)
	}
	defer rows.Close()

	var out []report.SiteBreakdown
	for rows.Next() {
		var b report.SiteBreakdown
		if err := rows.Scan(&b.SiteID, &b.SiteName, &b.ClientName, &b.Labours, &b.DaysWorked, &b.TotalHours, &b.TotalPay); err != nil {
			return nil, fmt.Errorf("failed to scan site breakdown: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate site breakdown: %w", err)
	}

	return out, nil
}

// Analytics implements report.Repository.
func (r *reportRepository) Analytics(ctx context.Context, startDate, endDate string) (report.Analytics, error) {
	q := GetQuerier(ctx, r.db)

	a := report.Analytics{StartDate: startDate, EndDate: endDate}

	// Present-today counts against the UAE calendar date, which may differ
	// from the database server's CURRENT_DATE.
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(DISTINCT labour_id),
			COUNT(*) FILTER (WHERE date = $3),
			COUNT(*),
			COUNT(DISTINCT date),
			COALESCE(SUM(hours_worked), 0),
			COALESCE(SUM(total_pay), 0),
			COALESCE(SUM(regular_pay), 0),
			COALESCE(SUM(ot_pay), 0),
			COUNT(*) FILTER (WHERE is_sunday),
			COUNT(*) FILTER (WHERE is_holiday)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
	`, startDate, endDate, uaetime.Today()).Scan(
		&a.ActiveLabours, &a.PresentToday, &a.TotalRecords, &a.UniqueWorkDays,
		&a.TotalHours, &a.TotalWages, &a.RegularPay, &a.TotalOT,
		&a.SundayRecords, &a.HolidayRecords,
	)
	if err != nil {
		return report.Analytics{}, fmt.Errorf("failed to run analytics totals: %w", err)
	}

	if a.ByClient, err = r.ClientBreakdown(ctx, startDate, endDate); err != nil {
		return report.Analytics{}, err
	}

	rows, err := q.Query(ctx, `
		SELECT u.id, u.name, COUNT(a.id), COALESCE(SUM(a.hours_worked), 0), COALESCE(SUM(a.total_pay), 0)
		FROM users u
		JOIN attendances a ON a.labour_id = u.id AND a.date BETWEEN $1 AND $2
		GROUP BY u.id, u.name
		ORDER BY SUM(a.total_pay) DESC
		LIMIT 10
	`, startDate, endDate)
	if err != nil {
		return report.Analytics{}, fmt.Errorf("failed to run top labours: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var top report.TopLabour
		if err := rows.Scan(&top.LabourID, &top.LabourName, &top.DaysWorked, &top.TotalHours, &top.TotalPay); err != nil {
			return report.Analytics{}, fmt.Errorf("failed to scan top labour: %w", err)
		}
		a.TopLabours = append(a.TopLabours, top)
	}
	if err := rows.Err(); err != nil {
		return report.Analytics{}, fmt.Errorf("failed to iterate top labours: %w", err)
	}

	return a, nil
}
