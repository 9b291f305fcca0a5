package employee

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrEmailExists          = errors.New("email already in use")
	ErrNotOwnProfile        = errors.New("you can only update your own profile")
	ErrRestrictedField      = errors.New("restricted field")
	ErrFlagReasonRequired   = errors.New("flag reason is required")
	ErrCodeAllocationFailed = errors.New("could not allocate employee code")
)

// RestrictedFieldError reports the admin-only field a non-admin tried to change.
type RestrictedFieldError struct {
	Field string
}

func (e *RestrictedFieldError) Error() string {
	return fmt.Sprintf("you don't have permission to update %s", e.Field)
}

func (e *RestrictedFieldError) Unwrap() error {
	return ErrRestrictedField
}
