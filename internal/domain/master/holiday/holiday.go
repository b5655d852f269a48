package holiday

import (
	"context"
	"errors"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists on this date")
)

// Holiday is a paid public holiday. The date doubles as the natural key the
// wage engine matches attendance dates against.
type Holiday struct {
	ID        string
	Date      string
	Name      string
	CreatedAt time.Time
}

type CreateRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

func ToResponse(h Holiday) Response {
	return Response{ID: h.ID, Date: h.Date, Name: h.Name}
}

func ToResponses(holidays []Holiday) []Response {
	out := make([]Response, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ToResponse(h))
	}
	return out
}

type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	// ListDates returns holiday dates within [startDate, endDate] inclusive,
	// in the YYYY-MM-DD form the wage engine compares against.
	ListDates(ctx context.Context, startDate, endDate string) ([]string, error)
	GetByDate(ctx context.Context, date string) (*Holiday, error)
	Delete(ctx context.Context, id string) error
}
