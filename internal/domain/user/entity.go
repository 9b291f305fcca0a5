package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string // optional one-to-one link to an employee
	CreatedAt    time.Time
}

// IsAdmin checks if user has the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsLinkedTo reports whether the user owns the given employee record.
func (u *User) IsLinkedTo(employeeID string) bool {
	return u.EmployeeID != nil && *u.EmployeeID == employeeID
}
