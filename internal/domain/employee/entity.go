package employee

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type Employee struct {
	ID           string
	EmployeeCode string // EMP### shown to users as employeeId
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Avatar       *string
	Age          int
	DateOfBirth  *time.Time
	Gender       Gender
	Department   string
	Position     string
	Class        *string
	Subjects     []string
	Salary       *decimal.Decimal
	JoinDate     time.Time
	Status       Status
	IsFlagged    bool
	FlagReason   *string
	Attendance   float64
	Address      *string
	City         *string
	State        *string
	Country      *string
	ZipCode      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusOnLeave    Status = "ON_LEAVE"
	StatusTerminated Status = "TERMINATED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

const (
	codePrefix = "EMP"
	// MaxCodeDigits bounds the numeric suffix counted when allocating codes,
	// keeping it within a 32-bit integer in every store.
	MaxCodeDigits = 9
)

// FullName is derived, never stored.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// FullAddress joins the present address parts with ", ". Nil when none are set.
func (e Employee) FullAddress() *string {
	var parts []string
	for _, p := range []*string{e.Address, e.City, e.State, e.ZipCode, e.Country} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// DefaultAvatar builds the avatar URL used when none is supplied.
func DefaultAvatar(firstName, lastName string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + firstName + lastName
}

// FormatCode renders the n-th employee code, e.g. 7 -> EMP007.
func FormatCode(n int) string {
	return fmt.Sprintf("%s%03d", codePrefix, n)
}

// ParseCode returns the numeric suffix of an employee code.
func ParseCode(code string) (int, bool) {
	digits, ok := strings.CutPrefix(code, codePrefix)
	if !ok || len(digits) > MaxCodeDigits || !validator.IsNumeric(digits) {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextCode returns the code following the highest numeric suffix in use.
func NextCode(maxSuffix int) string {
	return FormatCode(maxSuffix + 1)
}
