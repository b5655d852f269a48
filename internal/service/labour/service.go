package labour

import (
	"context"

	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/service/auth"
)

type UserServiceImpl struct {
	user.Repository
}

func NewUserService(userRepo user.Repository) *UserServiceImpl {
	return &UserServiceImpl{Repository: userRepo}
}

// CreateLabour registers a labour with the next sequential numeric username.
func (s *UserServiceImpl) CreateLabour(ctx context.Context, req user.CreateLabourRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	username, err := s.Repository.NextLabourUsername(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	// PINs are assigned when the admin leaves the field blank. The plaintext
	// goes back in this response and is unrecoverable afterwards.
	pin := req.PIN
	if pin == "" {
		if pin, err = auth.GeneratePIN(); err != nil {
			return user.UserResponse{}, err
		}
	}
	pinHash, err := auth.HashPIN(pin)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.Repository.Create(ctx, user.User{
		Username:      username,
		Name:          req.Name,
		Role:          user.RoleLabour,
		PINHash:       pinHash,
		MonthlyWage:   req.MonthlyWage,
		Designation:   req.Designation,
		Phone:         req.Phone,
		PassportID:    req.PassportID,
		DateOfJoining: req.DateOfJoining,
		Status:        user.StatusActive,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	resp := user.ToResponse(created)
	resp.PIN = pin
	return resp, nil
}

// ListLabours returns every labour, active and inactive.
func (s *UserServiceImpl) ListLabours(ctx context.Context) ([]user.UserResponse, error) {
	labours, err := s.Repository.ListByRole(ctx, user.RoleLabour)
	if err != nil {
		return nil, err
	}
	return user.ToResponses(labours), nil
}

// GetLabour returns one labour by id.
func (s *UserServiceImpl) GetLabour(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.getByRole(ctx, id, user.RoleLabour)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateLabour applies a partial update. A wage change only affects records
// calculated after it; stored pay columns are never rewritten.
func (s *UserServiceImpl) UpdateLabour(ctx context.Context, id string, req user.UpdateLabourRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.getByRole(ctx, id, user.RoleLabour)
	if err != nil {
		return user.UserResponse{}, err
	}

	applyUserPatch(&u, req.Name, req.Phone, req.Status)
	if req.MonthlyWage != nil {
		u.MonthlyWage = *req.MonthlyWage
	}
	if req.Designation != nil {
		u.Designation = req.Designation
	}
	if req.PassportID != nil {
		u.PassportID = req.PassportID
	}
	if req.DateOfJoining != nil {
		u.DateOfJoining = req.DateOfJoining
	}

	updated, err := s.Repository.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// DeleteLabour removes a labour with no attendance history. With history the
// delete is refused and the caller is expected to deactivate the account,
// keeping payroll reconstructible.
func (s *UserServiceImpl) DeleteLabour(ctx context.Context, id string) error {
	u, err := s.getByRole(ctx, id, user.RoleLabour)
	if err != nil {
		return err
	}

	has, err := s.Repository.HasAttendance(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return user.ErrHasAttendance
	}

	return s.Repository.Delete(ctx, u.ID)
}

// ResetPIN assigns a fresh random PIN to a labour or manager and returns it.
// The plaintext exists only in this response.
func (s *UserServiceImpl) ResetPIN(ctx context.Context, id string) (string, error) {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return "", err
	}

	pin, err := auth.GeneratePIN()
	if err != nil {
		return "", err
	}
	pinHash, err := auth.HashPIN(pin)
	if err != nil {
		return "", err
	}

	if err := s.Repository.UpdatePINHash(ctx, id, pinHash); err != nil {
		return "", err
	}
	return pin, nil
}

// CreateManager registers a manager account with a chosen username.
func (s *UserServiceImpl) CreateManager(ctx context.Context, req user.CreateManagerRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	pinHash, err := auth.HashPIN(req.PIN)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.Repository.Create(ctx, user.User{
		Username: req.Username,
		Name:     req.Name,
		Role:     user.RoleManager,
		PINHash:  pinHash,
		Phone:    req.Phone,
		Status:   user.StatusActive,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// ListManagers returns every manager account.
func (s *UserServiceImpl) ListManagers(ctx context.Context) ([]user.UserResponse, error) {
	managers, err := s.Repository.ListByRole(ctx, user.RoleManager)
	if err != nil {
		return nil, err
	}
	return user.ToResponses(managers), nil
}

// UpdateManager applies a partial update to a manager account.
func (s *UserServiceImpl) UpdateManager(ctx context.Context, id string, req user.UpdateManagerRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.getByRole(ctx, id, user.RoleManager)
	if err != nil {
		return user.UserResponse{}, err
	}

	applyUserPatch(&u, req.Name, req.Phone, req.Status)

	updated, err := s.Repository.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// DeleteManager removes a manager account. callerID guards against an admin
// removing themselves.
func (s *UserServiceImpl) DeleteManager(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return user.ErrCannotDeleteSelf
	}

	u, err := s.getByRole(ctx, id, user.RoleManager)
	if err != nil {
		return err
	}

	return s.Repository.Delete(ctx, u.ID)
}

func (s *UserServiceImpl) getByRole(ctx context.Context, id string, role user.Role) (user.User, error) {
	u, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if u.Role != role {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func applyUserPatch(u *user.User, name, phone, status *string) {
	if name != nil {
		u.Name = *name
	}
	if phone != nil {
		u.Phone = phone
	}
	if status != nil {
		u.Status = user.Status(*status)
	}
}
