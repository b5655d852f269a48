package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
	ErrHasAttendance    = errors.New("labour has attendance records and cannot be deleted")
)
