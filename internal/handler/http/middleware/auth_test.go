package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	authservice "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

type captured struct {
	principal auth.Principal
	ok        bool
}

func newAuthChain(t *testing.T) (http.Handler, *captured, jwt.Service, user.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	jwtService, err := jwt.NewJWTService(testSecret, "1h")
	require.NoError(t, err)

	got := &captured{}
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.principal, got.ok = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	chain := jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader)(
		Authenticate(authservice.NewAuthService(users, jwtService), logger)(final),
	)
	return chain, got, jwtService, users
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	chain, got, jwtService, users := newAuthChain(t)
	employeeID := uuid.NewString()
	u, err := users.Create(context.Background(), user.User{
		Email: "john@staffhub.com", PasswordHash: "x", Role: user.RoleEmployee, EmployeeID: &employeeID,
	})
	require.NoError(t, err)

	token, _, err := jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	require.NoError(t, err)

	rec := serve(chain, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, got.ok)
	assert.Equal(t, u.ID, got.principal.UserID)
	assert.Equal(t, user.RoleEmployee, got.principal.Role)
	require.NotNil(t, got.principal.EmployeeID)
	assert.Equal(t, employeeID, *got.principal.EmployeeID)
}

func TestAuthenticate_AnonymousCases(t *testing.T) {
	chain, got, jwtService, _ := newAuthChain(t)

	ghostToken, _, err := jwtService.GenerateAccessToken(uuid.NewString(), "ghost@staffhub.com", user.RoleAdmin)
	require.NoError(t, err)

	other, err := jwt.NewJWTService("some-other-secret", "1h")
	require.NoError(t, err)
	forged, _, err := other.GenerateAccessToken(uuid.NewString(), "admin@staffhub.com", user.RoleAdmin)
	require.NoError(t, err)

	cases := map[string]string{
		"no header":      "",
		"garbage":        "Bearer not-a-jwt",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"wrong secret":   "Bearer " + forged,
		"user not found": "Bearer " + ghostToken,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			*got = captured{}
			rec := serve(chain, header)
			assert.Equal(t, http.StatusNoContent, rec.Code, "never a transport error")
			assert.False(t, got.ok)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	h := BodyLimit(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	small := httptest.NewRecorder()
	h.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abc")))
	assert.Equal(t, http.StatusOK, small.Code)

	large := httptest.NewRecorder()
	h.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcdefgh")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}
