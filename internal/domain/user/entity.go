package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleLabour  Role = "labour"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User covers every login: admins, managers and labours share one table.
// Labour-only fields (wage, designation, passport) stay nil/zero for staff.
type User struct {
	ID            string
	Username      string
	Name          string
	Role          Role
	PINHash       string
	MonthlyWage   float64
	Designation   *string
	Phone         *string
	PassportID    *string
	DateOfJoining *string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u User) IsActive() bool {
	return u.Status == StatusActive
}
