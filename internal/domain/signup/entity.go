package signup

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Request is a self-service account application awaiting an admin decision.
type Request struct {
	ID              string
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Phone           *string
	Age             int
	Gender          employee.Gender
	Address         *string
	City            *string
	State           *string
	Country         *string
	ZipCode         *string
	Status          Status
	RejectionReason *string
	CreatedAt       time.Time
}

func (r Request) FullName() string {
	return r.FirstName + " " + r.LastName
}

func (r Request) IsPending() bool {
	return r.Status == StatusPending
}
