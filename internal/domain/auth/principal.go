package auth

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// Principal is the verified caller attached to a request context.
type Principal struct {
	UserID     string
	Email      string
	Role       user.Role
	EmployeeID *string
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the caller, if any. Anonymous requests have none.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequireAuthenticated gates operations that need any signed-in user.
func RequireAuthenticated(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, ErrAuthRequired
	}
	return p, nil
}

// RequireAdmin gates admin-only operations.
func RequireAdmin(ctx context.Context) (Principal, error) {
	p, err := RequireAuthenticated(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !p.IsAdmin() {
		return Principal{}, ErrAdminAccessRequired
	}
	return p, nil
}
