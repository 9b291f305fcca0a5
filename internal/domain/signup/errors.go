package signup

import "errors"

var (
	ErrSignupRequestNotFound   = errors.New("signup request not found")
	ErrSignupRequestExists     = errors.New("signup request already exists for this email")
	ErrPendingRequestExists    = errors.New("a signup request with this email is already pending")
	ErrAlreadyProcessed        = errors.New("this request has already been processed")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)
