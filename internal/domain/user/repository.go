package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	// NextLabourUsername returns the next free numeric labour code (>= 1001).
	NextLabourUsername(ctx context.Context) (string, error)
	Update(ctx context.Context, u User) (User, error)
	UpdatePINHash(ctx context.Context, id, pinHash string) error
	Delete(ctx context.Context, id string) error
	HasAttendance(ctx context.Context, id string) (bool, error)
}
