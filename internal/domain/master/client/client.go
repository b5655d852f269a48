package client

import (
	"context"
	"errors"
	"time"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientNameExists    = errors.New("a client with this name already exists")
	ErrClientHasAttendance = errors.New("client has attendance records and cannot be deleted")
)

type Client struct {
	ID        string
	Name      string
	Address   *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UpsertRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

func (r *UpsertRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}

type Response struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func ToResponse(c Client) Response {
	return Response{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponses(clients []Client) []Response {
	out := make([]Response, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToResponse(c))
	}
	return out
}

type Repository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	GetByName(ctx context.Context, name string) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, c Client) (Client, error)
	Delete(ctx context.Context, id string) error
	HasAttendance(ctx context.Context, id string) (bool, error)
}
