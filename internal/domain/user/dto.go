package user

import (
	"strings"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

type CreateLabourRequest struct {
	Name          string  `json:"name"`
	PIN           string  `json:"pin"`
	MonthlyWage   float64 `json:"monthly_wage"`
	Designation   *string `json:"designation"`
	Phone         *string `json:"phone"`
	PassportID    *string `json:"passport_id"`
	DateOfJoining *string `json:"date_of_joining"`
}

func (r *CreateLabourRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.PIN != "" && !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin must be exactly 4 digits"})
	}
	if r.MonthlyWage <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_wage", Message: "monthly wage must be greater than zero"})
	}
	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date of joining must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLabourRequest struct {
	Name          *string  `json:"name"`
	MonthlyWage   *float64 `json:"monthly_wage"`
	Designation   *string  `json:"designation"`
	Phone         *string  `json:"phone"`
	PassportID    *string  `json:"passport_id"`
	DateOfJoining *string  `json:"date_of_joining"`
	Status        *string  `json:"status"`
}

func (r *UpdateLabourRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.MonthlyWage != nil && *r.MonthlyWage <= 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_wage", Message: "monthly wage must be greater than zero"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active or inactive"})
	}
	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date of joining must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateManagerRequest struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	PIN      string  `json:"pin"`
	Phone    *string `json:"phone"`
}

func (r *CreateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin must be exactly 4 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateManagerRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

func (r *UpdateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	MonthlyWage   float64 `json:"monthly_wage,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	PassportID    *string `json:"passport_id,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`

	// PIN carries the plaintext PIN in create and reset responses only; it is
	// never readable again afterwards.
	PIN string `json:"pin,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		Role:          string(u.Role),
		MonthlyWage:   u.MonthlyWage,
		Designation:   u.Designation,
		Phone:         u.Phone,
		PassportID:    u.PassportID,
		DateOfJoining: u.DateOfJoining,
		Status:        string(u.Status),
		CreatedAt:     u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}
