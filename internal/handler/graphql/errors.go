package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeBadUserInput     = "BAD_USER_INPUT"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
	CodeParseFailed      = "GRAPHQL_PARSE_FAILED"
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
	CodeBadRequest       = "BAD_REQUEST"
)

const internalMessage = "Internal server error"

// Error is what resolvers hand back to the executor. Its message is public and
// its code ends up in the response's extensions.
type Error struct {
	Code    string
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Extensions implements gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

var _ gqlerrors.ExtendedError = (*Error)(nil)

type errorPresenter struct {
	logger     *slog.Logger
	production bool
}

// present maps a service error to its public form. Unrecognized errors are
// logged in full and reported as INTERNAL_SERVER_ERROR.
func (p errorPresenter) present(ctx context.Context, field string, err error) *Error {
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &Error{Code: CodeBadUserInput, Message: validationErrs.Error(), Fields: validationErrs.ToMap(), cause: err}
	}

	var restricted *employee.RestrictedFieldError
	if errors.As(err, &restricted) {
		return &Error{Code: CodeForbidden, Message: "You don't have permission to update " + restricted.Field, cause: err}
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrAuthRequired), errors.Is(err, auth.ErrInvalidToken):
		return &Error{Code: CodeUnauthenticated, Message: "Authentication required", cause: err}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &Error{Code: CodeUnauthenticated, Message: "Invalid email or password", cause: err}
	case errors.Is(err, auth.ErrAdminAccessRequired):
		return &Error{Code: CodeForbidden, Message: "Admin access required", cause: err}

	// Employee
	case errors.Is(err, employee.ErrNotOwnProfile):
		return &Error{Code: CodeForbidden, Message: "You can only update your own profile", cause: err}
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return &Error{Code: CodeNotFound, Message: "Employee not found", cause: err}
	case errors.Is(err, employee.ErrEmailExists):
		return &Error{Code: CodeBadUserInput, Message: "Email already in use", cause: err}
	case errors.Is(err, employee.ErrFlagReasonRequired):
		return &Error{Code: CodeBadUserInput, Message: "Flag reason is required", cause: err}

	// User
	case errors.Is(err, user.ErrUserEmailExists):
		return &Error{Code: CodeBadUserInput, Message: "Email already registered", cause: err}
	case errors.Is(err, user.ErrEmployeeLinked):
		return &Error{Code: CodeBadUserInput, Message: "Employee is already linked to a user", cause: err}

	// Signup
	case errors.Is(err, signup.ErrSignupRequestNotFound):
		return &Error{Code: CodeNotFound, Message: "Signup request not found", cause: err}
	case errors.Is(err, signup.ErrPendingRequestExists):
		return &Error{Code: CodeBadUserInput, Message: "A signup request with this email is already pending", cause: err}
	case errors.Is(err, signup.ErrSignupRequestExists):
		return &Error{Code: CodeBadUserInput, Message: "A signup request with this email already exists", cause: err}
	case errors.Is(err, signup.ErrAlreadyProcessed):
		return &Error{Code: CodeBadUserInput, Message: "This request has already been processed", cause: err}
	case errors.Is(err, signup.ErrRejectionReasonRequired):
		return &Error{Code: CodeBadUserInput, Message: "Rejection reason is required", cause: err}
	}

	return p.internal(ctx, field, err)
}

func (p errorPresenter) internal(ctx context.Context, field string, err error) *Error {
	p.logger.ErrorContext(ctx, "graphql resolver error", slog.String("field", field), slog.Any("error", err))
	msg := internalMessage
	if !p.production {
		msg = err.Error()
	}
	return &Error{Code: CodeInternal, Message: msg, cause: err}
}

// finalize gives every error in the result a code. Errors without a path
// come from coercing the request itself; the rest escaped a resolver
// unmapped, usually as a recovered panic.
func (p errorPresenter) finalize(ctx context.Context, errs []gqlerrors.FormattedError) {
	for i := range errs {
		if _, ok := errs[i].Extensions["code"]; ok {
			continue
		}
		if len(errs[i].Path) == 0 {
			errs[i].Extensions = map[string]interface{}{"code": CodeBadUserInput}
			continue
		}
		p.logger.ErrorContext(ctx, "graphql execution error",
			slog.Any("path", errs[i].Path),
			slog.String("error", errs[i].Message),
		)
		if p.production {
			errs[i].Message = internalMessage
		}
		errs[i].Extensions = map[string]interface{}{"code": CodeInternal}
	}
}

// requestErrors converts parse or validation failures into response errors.
func requestErrors(code string, errs ...gqlerrors.FormattedError) []gqlerrors.FormattedError {
	for i := range errs {
		errs[i].Extensions = map[string]interface{}{"code": code}
	}
	return errs
}
