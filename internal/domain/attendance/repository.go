package attendance

import (
	"context"

	"github.com/wagetrack/labour-backend-go/internal/payment"
)

type ListFilter struct {
	Date     string
	ClientID *string
	SiteID   *string
}

type Repository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByLabourAndDate returns nil when no record exists for the pair.
	GetByLabourAndDate(ctx context.Context, labourID, date string) (*Attendance, error)
	Update(ctx context.Context, a Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error

	ListByDate(ctx context.Context, filter ListFilter) ([]Attendance, error)
	ListByLabourRange(ctx context.Context, labourID, startDate, endDate string) ([]Attendance, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]Attendance, error)

	MonthSummary(ctx context.Context, labourID, startDate, endDate string) (MonthSummary, error)

	Verify(ctx context.Context, id, verifiedBy string) error
	VerifyBulk(ctx context.Context, ids []string, verifiedBy string) (int, error)

	// Explicit absences. A labour with neither an attendance row nor an
	// absence row for a date is pending until the day closes.
	UpsertAbsence(ctx context.Context, labourID, date, markedBy string) error
	DeleteAbsence(ctx context.Context, labourID, date string) error
	DeleteByLabourAndDate(ctx context.Context, labourID, date string) error
	ListAbsentLabourIDs(ctx context.Context, date string) ([]string, error)
}

type Service interface {
	CheckIn(ctx context.Context, labourID string, req CheckInRequest) (Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Response, error)

	DailyBoard(ctx context.Context, date string, clientID, siteID *string) (Board, error)
	MarkPresent(ctx context.Context, markedBy string, req MarkPresentRequest) (Response, error)
	MarkAbsent(ctx context.Context, markedBy string, req MarkAbsentRequest) error

	Verify(ctx context.Context, id, verifiedBy string) error
	VerifyBulk(ctx context.Context, verifiedBy string, req BulkVerifyRequest) (int, error)

	MyAttendance(ctx context.Context, labourID, startDate, endDate string) ([]Response, MonthSummary, error)
	MyDashboard(ctx context.Context, labourID string) (Dashboard, error)

	Estimate(ctx context.Context, req EstimateRequest) (payment.Result, error)
}
