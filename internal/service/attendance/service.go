package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/holiday"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
	"github.com/wagetrack/labour-backend-go/internal/domain/setting"
	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/payment"
	"github.com/wagetrack/labour-backend-go/internal/pkg/database"
	"github.com/wagetrack/labour-backend-go/internal/pkg/uaetime"
	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
	"github.com/wagetrack/labour-backend-go/internal/repository/postgresql"
)

// Cutoff defaults when the settings rows are missing: yesterday's check-in
// closes at 16:30 UAE time.
const (
	defaultCutoffHour   = 16
	defaultCutoffMinute = 30

	defaultStartTime = "10:00"
	defaultEndTime   = "20:00"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	userRepo    user.Repository
	clientRepo  client.Repository
	siteRepo    site.Repository
	holidayRepo holiday.Repository
	settingRepo setting.Repository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	clientRepo client.Repository,
	siteRepo site.Repository,
	holidayRepo holiday.Repository,
	settingRepo setting.Repository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:          db,
		Repository:  attendanceRepo,
		userRepo:    userRepo,
		clientRepo:  clientRepo,
		siteRepo:    siteRepo,
		holidayRepo: holidayRepo,
		settingRepo: settingRepo,
	}
}

// CheckIn implements attendance.Service. Labours can only record today, or
// yesterday until the configured cutoff.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, labourID string, req attendance.CheckInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load settings: %w", err)
	}

	today := uaetime.Today()
	switch req.Date {
	case today:
	case uaetime.Yesterday():
		if s.cutoffPassed(settings) {
			return attendance.Response{}, attendance.ErrCutoffPassed
		}
	default:
		if req.Date > today {
			return attendance.Response{}, attendance.ErrFutureDate
		}
		return attendance.Response{}, attendance.ErrDateNotAllowed
	}

	labour, err := s.userRepo.GetByID(ctx, labourID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load labour: %w", err)
	}

	record, err := s.buildRecord(ctx, labour, settings, attendance.Attendance{
		LabourID:  labourID,
		Date:      req.Date,
		ClientID:  req.ClientID,
		SiteID:    req.SiteID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	if existing, err := s.Repository.GetByLabourAndDate(ctx, labourID, req.Date); err != nil {
		return attendance.Response{}, err
	} else if existing != nil {
		return attendance.Response{}, attendance.ErrDuplicateEntry
	}

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// A prior absent mark for the day is superseded by the check-in.
		if err := s.Repository.DeleteAbsence(txCtx, labourID, req.Date); err != nil {
			return err
		}
		created, err = s.Repository.Create(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(created), nil
}

// buildRecord validates the referenced client/site pair, checks the labour's
// wage and fills in the computed pay columns.
func (s *AttendanceServiceImpl) buildRecord(ctx context.Context, labour user.User, settings map[string]string, record attendance.Attendance) (attendance.Attendance, error) {
	if labour.MonthlyWage <= 0 {
		return attendance.Attendance{}, attendance.ErrWageNotSet
	}

	if _, err := s.clientRepo.GetByID(ctx, record.ClientID); err != nil {
		return attendance.Attendance{}, err
	}
	st, err := s.siteRepo.GetByID(ctx, record.SiteID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if st.ClientID != record.ClientID {
		return attendance.Attendance{}, attendance.ErrSiteClientMismatch
	}

	holidays, err := s.holidayRepo.ListDates(ctx, record.Date, record.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	designation := ""
	if labour.Designation != nil {
		designation = *labour.Designation
	}

	result, err := payment.Calculate(
		labour.MonthlyWage, record.StartTime, record.EndTime, record.Date,
		holidays, payment.ConfigFromSettings(settings), designation,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record.HoursWorked = result.HoursWorked
	record.RegularPay = result.RegularPay
	record.OTPay = result.OTPay
	record.TotalPay = result.TotalPay
	record.IsSunday = result.IsSunday
	record.IsHoliday = result.IsHoliday

	return record, nil
}

// Update implements attendance.Service. Any change to the shift or the date
// context recomputes the stored pay columns and clears verification.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	record, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}

	if req.ClientID != nil {
		record.ClientID = *req.ClientID
	}
	if req.SiteID != nil {
		record.SiteID = *req.SiteID
	}
	if req.StartTime != nil {
		record.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		record.EndTime = *req.EndTime
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	// The merged pair must pass the same gate as a fresh check-in.
	if shiftErr := attendance.ValidateShift(record.StartTime, record.EndTime); shiftErr != nil {
		return attendance.Response{}, validator.ValidationErrors{*shiftErr}
	}

	labour, err := s.userRepo.GetByID(ctx, record.LabourID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load labour: %w", err)
	}

	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load settings: %w", err)
	}

	record, err = s.buildRecord(ctx, labour, settings, record)
	if err != nil {
		return attendance.Response{}, err
	}

	updated, err := s.Repository.Update(ctx, record)
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.Service.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

// GetByID implements attendance.Service.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.Response, error) {
	record, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return attendance.ToResponse(record), nil
}

// DailyBoard implements attendance.Service. Once a day has closed, labours
// with no record are shown absent instead of pending.
func (s *AttendanceServiceImpl) DailyBoard(ctx context.Context, date string, clientID, siteID *string) (attendance.Board, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.Board{}, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}

	labours, err := s.userRepo.ListByRole(ctx, user.RoleLabour)
	if err != nil {
		return attendance.Board{}, fmt.Errorf("failed to list labours: %w", err)
	}

	records, err := s.Repository.ListByDate(ctx, attendance.ListFilter{Date: date, ClientID: clientID, SiteID: siteID})
	if err != nil {
		return attendance.Board{}, err
	}
	byLabour := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byLabour[r.LabourID] = r
	}

	absentIDs, err := s.Repository.ListAbsentLabourIDs(ctx, date)
	if err != nil {
		return attendance.Board{}, err
	}
	absent := make(map[string]bool, len(absentIDs))
	for _, id := range absentIDs {
		absent[id] = true
	}

	dayClosed := date < uaetime.Today()

	board := attendance.Board{Date: date, AutoAbsent: dayClosed}
	for _, l := range labours {
		if !l.IsActive() {
			continue
		}

		row := attendance.BoardRow{
			LabourID:    l.ID,
			Username:    l.Username,
			Name:        l.Name,
			Designation: l.Designation,
			Phone:       l.Phone,
		}

		switch {
		case byLabour[l.ID].ID != "":
			rec := byLabour[l.ID]
			resp := attendance.ToResponse(rec)
			row.Status = attendance.BoardStatusPresent
			row.Attendance = &resp
			board.Summary.Present++
		case absent[l.ID] || dayClosed:
			row.Status = attendance.BoardStatusAbsent
			board.Summary.Absent++
		default:
			row.Status = attendance.BoardStatusPending
			board.Summary.Pending++
		}

		board.Summary.Total++
		board.Labours = append(board.Labours, row)
	}

	return board, nil
}

// MarkPresent implements attendance.Service. Managers and admins can backfill
// any past date; shift times default to the configured standard shift.
func (s *AttendanceServiceImpl) MarkPresent(ctx context.Context, markedBy string, req attendance.MarkPresentRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}
	if req.Date > uaetime.Today() {
		return attendance.Response{}, attendance.ErrFutureDate
	}

	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load settings: %w", err)
	}

	startTime := stringSetting(settings, setting.KeyDefaultStartTime, defaultStartTime)
	endTime := stringSetting(settings, setting.KeyDefaultEndTime, defaultEndTime)
	if req.StartTime != nil && req.EndTime != nil {
		startTime, endTime = *req.StartTime, *req.EndTime
	}
	if shiftErr := attendance.ValidateShift(startTime, endTime); shiftErr != nil {
		return attendance.Response{}, validator.ValidationErrors{*shiftErr}
	}

	labour, err := s.userRepo.GetByID(ctx, req.LabourID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to load labour: %w", err)
	}

	// A staff-entered record counts as verified from the start.
	record, err := s.buildRecord(ctx, labour, settings, attendance.Attendance{
		LabourID:      req.LabourID,
		Date:          req.Date,
		ClientID:      req.ClientID,
		SiteID:        req.SiteID,
		StartTime:     startTime,
		EndTime:       endTime,
		Notes:         req.Notes,
		MarkedBy:      &markedBy,
		AdminVerified: true,
		VerifiedBy:    &markedBy,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	if existing, err := s.Repository.GetByLabourAndDate(ctx, req.LabourID, req.Date); err != nil {
		return attendance.Response{}, err
	} else if existing != nil {
		return attendance.Response{}, attendance.ErrDuplicateEntry
	}

	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.Repository.DeleteAbsence(txCtx, req.LabourID, req.Date); err != nil {
			return err
		}
		created, err = s.Repository.Create(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return attendance.ToResponse(created), nil
}

// MarkAbsent implements attendance.Service. Replaces any present record for
// the day with an explicit absence.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, markedBy string, req attendance.MarkAbsentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Date > uaetime.Today() {
		return attendance.ErrFutureDate
	}

	if _, err := s.userRepo.GetByID(ctx, req.LabourID); err != nil {
		return fmt.Errorf("failed to load labour: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.Repository.DeleteByLabourAndDate(txCtx, req.LabourID, req.Date); err != nil {
			return err
		}
		return s.Repository.UpsertAbsence(txCtx, req.LabourID, req.Date, markedBy)
	})
}

// Verify implements attendance.Service.
func (s *AttendanceServiceImpl) Verify(ctx context.Context, id, verifiedBy string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Verify(ctx, id, verifiedBy)
}

// VerifyBulk implements attendance.Service.
func (s *AttendanceServiceImpl) VerifyBulk(ctx context.Context, verifiedBy string, req attendance.BulkVerifyRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.Repository.VerifyBulk(ctx, req.IDs, verifiedBy)
}

// MyAttendance implements attendance.Service. An empty range defaults to the
// current month to date.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, labourID, startDate, endDate string) ([]attendance.Response, attendance.MonthSummary, error) {
	if startDate == "" {
		startDate = uaetime.MonthStart()
	}
	if endDate == "" {
		endDate = uaetime.Today()
	}
	if _, ok := validator.IsValidDate(startDate); !ok {
		return nil, attendance.MonthSummary{}, validator.ValidationErrors{{Field: "start_date", Message: "start date must be YYYY-MM-DD"}}
	}
	if _, ok := validator.IsValidDate(endDate); !ok {
		return nil, attendance.MonthSummary{}, validator.ValidationErrors{{Field: "end_date", Message: "end date must be YYYY-MM-DD"}}
	}

	records, err := s.Repository.ListByLabourRange(ctx, labourID, startDate, endDate)
	if err != nil {
		return nil, attendance.MonthSummary{}, err
	}

	summary, err := s.Repository.MonthSummary(ctx, labourID, startDate, endDate)
	if err != nil {
		return nil, attendance.MonthSummary{}, err
	}

	return attendance.ToResponses(records), summary, nil
}

// MyDashboard implements attendance.Service.
func (s *AttendanceServiceImpl) MyDashboard(ctx context.Context, labourID string) (attendance.Dashboard, error) {
	labour, err := s.userRepo.GetByID(ctx, labourID)
	if err != nil {
		return attendance.Dashboard{}, fmt.Errorf("failed to load labour: %w", err)
	}

	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return attendance.Dashboard{}, fmt.Errorf("failed to load settings: %w", err)
	}

	dash := attendance.Dashboard{
		Designation:     labour.Designation,
		MonthlyWage:     labour.MonthlyWage,
		YesterdayClosed: s.cutoffPassed(settings),
	}

	if rec, err := s.Repository.GetByLabourAndDate(ctx, labourID, uaetime.Today()); err != nil {
		return attendance.Dashboard{}, err
	} else if rec != nil {
		resp := attendance.ToResponse(*rec)
		dash.Today = &resp
	}

	if rec, err := s.Repository.GetByLabourAndDate(ctx, labourID, uaetime.Yesterday()); err != nil {
		return attendance.Dashboard{}, err
	} else if rec != nil {
		resp := attendance.ToResponse(*rec)
		dash.Yesterday = &resp
	}

	dash.MonthSummary, err = s.Repository.MonthSummary(ctx, labourID, uaetime.MonthStart(), uaetime.Today())
	if err != nil {
		return attendance.Dashboard{}, err
	}

	return dash, nil
}

// Estimate implements attendance.Service. Pure calculation for the live pay
// preview; nothing is persisted. Degenerate half-filled input yields the zero
// breakdown rather than an error.
func (s *AttendanceServiceImpl) Estimate(ctx context.Context, req attendance.EstimateRequest) (payment.Result, error) {
	settings, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		return payment.Result{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var holidays []string
	if req.Date != "" {
		if _, ok := validator.IsValidDate(req.Date); !ok {
			return payment.Result{}, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
		}
		if holidays, err = s.holidayRepo.ListDates(ctx, req.Date, req.Date); err != nil {
			return payment.Result{}, fmt.Errorf("failed to load holidays: %w", err)
		}
	}

	return payment.Calculate(
		req.MonthlyWage, req.StartTime, req.EndTime, req.Date,
		holidays, payment.ConfigFromSettings(settings), req.Designation,
	)
}

// cutoffPassed reports whether yesterday's check-in window has closed.
func (s *AttendanceServiceImpl) cutoffPassed(settings map[string]string) bool {
	hour := intSetting(settings, setting.KeyCutoffHour, defaultCutoffHour)
	minute := intSetting(settings, setting.KeyCutoffMinute, defaultCutoffMinute)

	now := uaetime.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, uaetime.Location())
	return now.After(cutoff)
}

func intSetting(settings map[string]string, key string, fallback int) int {
	raw, ok := settings[key]
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func stringSetting(settings map[string]string, key, fallback string) string {
	if v, ok := settings[key]; ok && v != "" {
		return v
	}
	return fallback
}
