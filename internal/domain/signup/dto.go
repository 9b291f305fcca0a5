package signup

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
	Age       int
	Gender    *employee.Gender
	Address   *string
	City      *string
	State     *string
	Country   *string
	ZipCode   *string
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters long"})
	}
	if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must not exceed 72 bytes"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName is required"})
	}
	if r.Age < 0 {
		errs = append(errs, validator.ValidationError{Field: "age", Message: "age must not be negative"})
	}
	if r.Gender != nil && !r.Gender.Valid() {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveRequest holds the employment details an admin assigns on approval.
type ApproveRequest struct {
	Department string
	Position   string
	Class      *string
	Salary     *decimal.Decimal
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
