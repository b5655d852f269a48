package site

import (
	"context"
	"errors"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

var (
	ErrSiteNotFound      = errors.New("site not found")
	ErrSiteHasAttendance = errors.New("site has attendance records and cannot be deleted")
)

type Site struct {
	ID        string
	ClientID  string
	Name      string
	Address   *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	ClientName *string
}

type UpsertRequest struct {
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client is required"})
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
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	ClientName *string `json:"client_name,omitempty"`
	Name       string  `json:"name"`
	Address    *string `json:"address,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(s Site) Response {
	return Response{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ClientName: s.ClientName,
		Name:       s.Name,
		Address:    s.Address,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponses(sites []Site) []Response {
	out := make([]Response, 0, len(sites))
	for _, s := range sites {
		out = append(out, ToResponse(s))
	}
	return out
}

type Repository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context) ([]Site, error)
	ListByClient(ctx context.Context, clientID string) ([]Site, error)
	Update(ctx context.Context, s Site) (Site, error)
	Delete(ctx context.Context, id string) error
	HasAttendance(ctx context.Context, id string) (bool, error)
}
