package employee

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type SortField string

const (
	SortByName       SortField = "NAME"
	SortByEmail      SortField = "EMAIL"
	SortByAge        SortField = "AGE"
	SortByDepartment SortField = "DEPARTMENT"
	SortByPosition   SortField = "POSITION"
	SortByJoinDate   SortField = "JOIN_DATE"
	SortBySalary     SortField = "SALARY"
	SortByAttendance SortField = "ATTENDANCE"
	SortByCreatedAt  SortField = "CREATED_AT"
)

// SortFields lists every sortable field in declaration order.
var SortFields = []SortField{
	SortByName, SortByEmail, SortByAge, SortByDepartment, SortByPosition,
	SortByJoinDate, SortBySalary, SortByAttendance, SortByCreatedAt,
}

func (f SortField) Valid() bool {
	for _, s := range SortFields {
		if s == f {
			return true
		}
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// EmployeeFilter narrows a listing. Nil fields do not filter.
type EmployeeFilter struct {
	Search        *string
	Department    *string
	Status        *Status
	Gender        *Gender
	IsFlagged     *bool
	MinAge        *int
	MaxAge        *int
	MinAttendance *float64
	MaxAttendance *float64
}

type ListEmployeesRequest struct {
	Filter    EmployeeFilter
	Page      int
	PageSize  int
	SortBy    SortField
	SortOrder SortDirection
}

// Normalize applies defaults and clamps; it never fails.
func (r *ListEmployeesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	if !r.SortBy.Valid() {
		r.SortBy = SortByCreatedAt
	}
	if strings.ToUpper(string(r.SortOrder)) == string(SortAsc) {
		r.SortOrder = SortAsc
	} else {
		r.SortOrder = SortDesc
	}
	if r.Filter.Search != nil && *r.Filter.Search == "" {
		r.Filter.Search = nil
	}
	if r.Filter.Department != nil && *r.Filter.Department == "" {
		r.Filter.Department = nil
	}
}

// Offset is the number of rows skipped before the requested page.
func (r ListEmployeesRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

type PageInfo struct {
	CurrentPage     int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
	PageSize        int
}

func NewPageInfo(page, pageSize int, totalCount int64) PageInfo {
	totalPages := int(math.Ceil(float64(totalCount) / float64(pageSize)))
	return PageInfo{
		CurrentPage:     page,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
		PageSize:        pageSize,
	}
}

type ListEmployeesResponse struct {
	Data       []Employee
	TotalCount int64
	PageInfo   PageInfo
}

type CreateEmployeeRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Avatar      *string
	Age         int
	DateOfBirth *time.Time
	Gender      *Gender
	Department  string
	Position    string
	Class       *string
	Subjects    []string
	Salary      *decimal.Decimal
	JoinDate    *time.Time
	Status      *Status
	Address     *string
	City        *string
	State       *string
	Country     *string
	ZipCode     *string
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Age < 0 {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "age must not be negative"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.Gender != nil && !r.Gender.Valid() {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender is invalid"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is invalid"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries only the fields being changed.
type UpdateEmployeeRequest struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Avatar      *string
	Age         *int
	DateOfBirth *time.Time
	Gender      *Gender
	Department  *string
	Position    *string
	Class       *string
	Subjects    *[]string
	Salary      *decimal.Decimal
	Status      *Status
	IsFlagged   *bool
	FlagReason  *string
	Attendance  *float64
	Address     *string
	City        *string
	State       *string
	Country     *string
	ZipCode     *string
}

// RestrictedField returns the first admin-only field present, in a fixed order.
func (r *UpdateEmployeeRequest) RestrictedField() (string, bool) {
	switch {
	case r.Salary != nil:
		return "salary", true
	case r.Status != nil:
		return "status", true
	case r.IsFlagged != nil:
		return "isFlagged", true
	case r.FlagReason != nil:
		return "flagReason", true
	case r.Attendance != nil:
		return "attendance", true
	}
	return "", false
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Age != nil && *r.Age < 0 {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "age must not be negative"})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not be empty"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not be empty"})
	}
	if r.Gender != nil && !r.Gender.Valid() {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender is invalid"})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is invalid"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.Attendance != nil && (*r.Attendance < 0 || *r.Attendance > 100) {
		errs = append(errs, validator.ValidationError{Field: "attendance", Message: "attendance must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFlag rejects an update that would leave current flagged without a
// reason.
func (r *UpdateEmployeeRequest) ValidateFlag(current Employee) error {
	flagged := current.IsFlagged
	if r.IsFlagged != nil {
		flagged = *r.IsFlagged
	}
	if !flagged {
		return nil
	}
	reason := current.FlagReason
	if r.FlagReason != nil {
		reason = r.FlagReason
	}
	if reason == nil || validator.IsEmpty(*reason) {
		return ErrFlagReasonRequired
	}
	return nil
}

// Apply copies the present fields onto e. flagReason is cleared when the flag is lifted.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FirstName != nil {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		e.LastName = *r.LastName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = r.Phone
	}
	if r.Avatar != nil {
		e.Avatar = r.Avatar
	}
	if r.Age != nil {
		e.Age = *r.Age
	}
	if r.DateOfBirth != nil {
		e.DateOfBirth = r.DateOfBirth
	}
	if r.Gender != nil {
		e.Gender = *r.Gender
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Class != nil {
		e.Class = r.Class
	}
	if r.Subjects != nil {
		e.Subjects = append([]string{}, (*r.Subjects)...)
	}
	if r.Salary != nil {
		e.Salary = r.Salary
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.IsFlagged != nil {
		e.IsFlagged = *r.IsFlagged
	}
	if r.FlagReason != nil {
		e.FlagReason = r.FlagReason
	}
	if !e.IsFlagged {
		e.FlagReason = nil
	}
	if r.Attendance != nil {
		e.Attendance = *r.Attendance
	}
	if r.Address != nil {
		e.Address = r.Address
	}
	if r.City != nil {
		e.City = r.City
	}
	if r.State != nil {
		e.State = r.State
	}
	if r.Country != nil {
		e.Country = r.Country
	}
	if r.ZipCode != nil {
		e.ZipCode = r.ZipCode
	}
}
