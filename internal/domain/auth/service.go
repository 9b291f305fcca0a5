package auth

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthPayload, error)
	Login(ctx context.Context, req LoginRequest) (AuthPayload, error)
	// Me returns the calling user, or ErrAuthRequired when anonymous.
	Me(ctx context.Context) (user.User, error)
	// Identify turns verified token claims into a principal. A user that no
	// longer exists yields ErrInvalidToken.
	Identify(ctx context.Context, userID string) (Principal, error)
}
