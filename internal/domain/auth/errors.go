package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or pin")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
