package user

import "context"

type Service interface {
	CreateLabour(ctx context.Context, req CreateLabourRequest) (UserResponse, error)
	ListLabours(ctx context.Context) ([]UserResponse, error)
	GetLabour(ctx context.Context, id string) (UserResponse, error)
	UpdateLabour(ctx context.Context, id string, req UpdateLabourRequest) (UserResponse, error)
	DeleteLabour(ctx context.Context, id string) error
	ResetPIN(ctx context.Context, id string) (string, error)

	CreateManager(ctx context.Context, req CreateManagerRequest) (UserResponse, error)
	ListManagers(ctx context.Context) ([]UserResponse, error)
	UpdateManager(ctx context.Context, id string, req UpdateManagerRequest) (UserResponse, error)
	DeleteManager(ctx context.Context, id, callerID string) error
}
