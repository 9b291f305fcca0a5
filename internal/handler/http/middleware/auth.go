package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

// Authenticate attaches the caller behind a verified bearer token to the
// request context. It must run after jwtauth.Verify. A missing, invalid or
// stale token leaves the request anonymous; operations that need an identity
// reject it themselves.
func Authenticate(authService auth.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, claims, err := jwtauth.FromContext(ctx)
			if err != nil {
				if !errors.Is(err, jwtauth.ErrNoTokenFound) {
					logger.DebugContext(ctx, "ignoring invalid bearer token", slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}
			if token == nil {
				next.ServeHTTP(w, r)
				return
			}

			parsed, err := jwt.ClaimsFromMap(claims)
			if err != nil {
				logger.DebugContext(ctx, "ignoring bearer token with unexpected claims", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			principal, err := authService.Identify(ctx, parsed.UserID)
			if err != nil {
				if !errors.Is(err, auth.ErrInvalidToken) {
					logger.ErrorContext(ctx, "failed to identify bearer token", slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(ctx, principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
