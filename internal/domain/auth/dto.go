package auth

import (
	"strings"

	"github.com/wagetrack/labour-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin must be exactly 4 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      SessionUser `json:"user"`
}

type SessionUser struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Designation *string `json:"designation,omitempty"`
}
