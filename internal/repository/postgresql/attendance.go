package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.labour_id, to_char(a.date, 'YYYY-MM-DD'), a.client_id, a.site_id,
	a.start_time, a.end_time, a.hours_worked, a.regular_pay, a.ot_pay, a.total_pay,
	a.is_sunday, a.is_holiday, a.notes, a.marked_by,
	a.admin_verified, a.verified_by, a.verified_at,
	a.created_at, a.updated_at`

const attendanceJoins = `
	LEFT JOIN users u ON u.id = a.labour_id
	LEFT JOIN clients c ON c.id = a.client_id
	LEFT JOIN sites s ON s.id = a.site_id`

func scanAttendance(row pgx.Row, withJoins bool) (attendance.Attendance, error) {
	var a attendance.Attendance
	dest := []interface{}{
		&a.ID, &a.LabourID, &a.Date, &a.ClientID, &a.SiteID,
		&a.StartTime, &a.EndTime, &a.HoursWorked, &a.RegularPay, &a.OTPay, &a.TotalPay,
		&a.IsSunday, &a.IsHoliday, &a.Notes, &a.MarkedBy,
		&a.AdminVerified, &a.VerifiedBy, &a.VerifiedAt,
		&a.CreatedAt, &a.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &a.LabourName, &a.LabourDesignation, &a.ClientName, &a.SiteName)
	}
	err := row.Scan(dest...)
	return a, err
}

// Create implements attendance.Repository. The unique (labour_id, date) index
// turns concurrent double check-ins into ErrDuplicateEntry.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, labour_id, date, client_id, site_id, start_time, end_time,
			hours_worked, regular_pay, ot_pay, total_pay, is_sunday, is_holiday,
			notes, marked_by, admin_verified, verified_by, verified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, CASE WHEN $16 THEN NOW() END)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.LabourID, a.Date, a.ClientID, a.SiteID, a.StartTime, a.EndTime,
		a.HoursWorked, a.RegularPay, a.OTPay, a.TotalPay, a.IsSunday, a.IsHoliday,
		a.Notes, a.MarkedBy, a.AdminVerified, a.VerifiedBy,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateEntry
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			u.name, u.designation, c.name, s.name
		FROM attendances a` + attendanceJoins + `
		WHERE a.id = $1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return a, nil
}

// GetByLabourAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByLabourAndDate(ctx context.Context, labourID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.labour_id = $1 AND a.date = $2
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, labourID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by labour and date: %w", err)
	}

	return &a, nil
}

// Update implements attendance.Repository. Verification resets on edit: a
// changed record needs another admin look.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET client_id = $2, site_id = $3, start_time = $4, end_time = $5,
			hours_worked = $6, regular_pay = $7, ot_pay = $8, total_pay = $9,
			is_sunday = $10, is_holiday = $11, notes = $12,
			admin_verified = FALSE, verified_by = NULL, verified_at = NULL,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.ClientID, a.SiteID, a.StartTime, a.EndTime,
		a.HoursWorked, a.RegularPay, a.OTPay, a.TotalPay,
		a.IsSunday, a.IsHoliday, a.Notes,
	).Scan(&a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	a.AdminVerified = false
	a.VerifiedBy = nil
	a.VerifiedAt = nil

	return a, nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			u.name, u.designation, c.name, s.name
		FROM attendances a` + attendanceJoins + `
		WHERE a.date = $1
	`
	args := []interface{}{filter.Date}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND a.client_id = $%d", len(args))
	}
	if filter.SiteID != nil {
		args = append(args, *filter.SiteID)
		query += fmt.Sprintf(" AND a.site_id = $%d", len(args))
	}
	query += " ORDER BY u.name"

	return r.queryMany(ctx, q, query, args...)
}

// ListByLabourRange implements attendance.Repository.
func (r *attendanceRepository) ListByLabourRange(ctx context.Context, labourID, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			u.name, u.designation, c.name, s.name
		FROM attendances a` + attendanceJoins + `
		WHERE a.labour_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC
	`

	return r.queryMany(ctx, q, query, labourID, startDate, endDate)
}

// ListRange implements attendance.Repository.
func (r *attendanceRepository) ListRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + attendanceColumns + `,
			u.name, u.designation, c.name, s.name
		FROM attendances a` + attendanceJoins + `
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.date, u.name
	`

	return r.queryMany(ctx, q, query, startDate, endDate)
}

func (r *attendanceRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// MonthSummary implements attendance.Repository. Aggregates the stored pay
// columns; the engine is never re-run at read time.
func (r *attendanceRepository) MonthSummary(ctx context.Context, labourID, startDate, endDate string) (attendance.MonthSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(hours_worked), 0),
			COALESCE(SUM(regular_pay), 0),
			COALESCE(SUM(ot_pay), 0),
			COALESCE(SUM(total_pay), 0),
			COUNT(*) FILTER (WHERE is_sunday),
			COUNT(*) FILTER (WHERE is_holiday)
		FROM attendances
		WHERE labour_id = $1 AND date BETWEEN $2 AND $3 AND total_pay > 0
	`

	var s attendance.MonthSummary
	err := q.QueryRow(ctx, query, labourID, startDate, endDate).Scan(
		&s.DaysWorked, &s.TotalHours, &s.RegularPay, &s.OTPay, &s.TotalEarnings,
		&s.SundayDays, &s.HolidayDays,
	)
	if err != nil {
		return attendance.MonthSummary{}, fmt.Errorf("failed to get month summary: %w", err)
	}

	return s, nil
}

// Verify implements attendance.Repository.
func (r *attendanceRepository) Verify(ctx context.Context, id, verifiedBy string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances
		SET admin_verified = TRUE, verified_by = $2, verified_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND admin_verified = FALSE
	`, id, verifiedBy)
	if err != nil {
		return fmt.Errorf("failed to verify attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyVerified
	}

	return nil
}

// VerifyBulk implements attendance.Repository. Returns how many records were
// newly verified; already-verified ids are skipped, not errors.
func (r *attendanceRepository) VerifyBulk(ctx context.Context, ids []string, verifiedBy string) (int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances
		SET admin_verified = TRUE, verified_by = $2, verified_at = NOW(), updated_at = NOW()
		WHERE id = ANY($1) AND admin_verified = FALSE
	`, ids, verifiedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk verify attendances: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// UpsertAbsence implements attendance.Repository.
func (r *attendanceRepository) UpsertAbsence(ctx context.Context, labourID, date, markedBy string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO absences (id, labour_id, date, marked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (labour_id, date) DO UPDATE SET marked_by = EXCLUDED.marked_by
	`, uuid.NewString(), labourID, date, markedBy)
	if err != nil {
		return fmt.Errorf("failed to mark absence: %w", err)
	}

	return nil
}

// DeleteAbsence implements attendance.Repository.
func (r *attendanceRepository) DeleteAbsence(ctx context.Context, labourID, date string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM absences WHERE labour_id = $1 AND date = $2`, labourID, date); err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}

	return nil
}

// DeleteByLabourAndDate implements attendance.Repository.
func (r *attendanceRepository) DeleteByLabourAndDate(ctx context.Context, labourID, date string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE labour_id = $1 AND date = $2`, labourID, date); err != nil {
		return fmt.Errorf("failed to delete attendance by labour and date: %w", err)
	}

	return nil
}

// ListAbsentLabourIDs implements attendance.Repository.
func (r *attendanceRepository) ListAbsentLabourIDs(ctx context.Context, date string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT labour_id FROM absences WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return ids, nil
}
