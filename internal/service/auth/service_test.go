package auth

import (
	"context"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	"github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

func newTestAuthService(t *testing.T) (*AuthServiceImpl, *jwt.JWTService) {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)

	svc := NewAuthService(memory.NewUserRepository(memory.NewStore()), jwtService).(*AuthServiceImpl)
	svc.hashCost = bcrypt.MinCost
	return svc, jwtService
}

func TestAuthService_Register_DefaultsToEmployee(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newTestAuthService(t)

	payload, err := svc.Register(ctx, auth.RegisterRequest{Email: "new@staffhub.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, payload.User.Role)
	assert.NotEqual(t, "secret123", payload.User.PasswordHash)
	assert.NotEmpty(t, payload.Token)

	claims, err := jwtService.Verify(ctx, payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, claims.UserID)
	assert.Equal(t, user.RoleEmployee, claims.Role)
}

func TestAuthService_Register_Admin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	role := user.RoleAdmin

	payload, err := svc.Register(context.Background(), auth.RegisterRequest{Email: "boss@staffhub.com", Password: "secret123", Role: &role})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, payload.User.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "dup@staffhub.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "dup@staffhub.com", Password: "secret123"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{Email: "not-an-email", Password: "123"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "john@staffhub.com", Password: "employee123"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		payload, err := svc.Login(ctx, auth.LoginRequest{Email: "john@staffhub.com", Password: "employee123"})
		require.NoError(t, err)
		assert.NotEmpty(t, payload.Token)
		assert.Greater(t, payload.ExpiresAt, int64(0))
		assert.Equal(t, "john@staffhub.com", payload.User.Email)
	})

	t.Run("wrong password and unknown email fail the same way", func(t *testing.T) {
		_, wrongPassword := svc.Login(ctx, auth.LoginRequest{Email: "john@staffhub.com", Password: "nope"})
		_, unknownEmail := svc.Login(ctx, auth.LoginRequest{Email: "ghost@staffhub.com", Password: "employee123"})

		assert.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, auth.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, auth.ErrAuthRequired)

	payload, err := svc.Register(ctx, auth.RegisterRequest{Email: "me@staffhub.com", Password: "secret123"})
	require.NoError(t, err)

	principal, err := svc.Identify(ctx, payload.User.ID)
	require.NoError(t, err)

	me, err := svc.Me(auth.WithPrincipal(ctx, principal))
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, me.ID)
}

func TestAuthService_Identify_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Identify(context.Background(), "123e4567-e89b-12d3-a456-426614174000")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Identify(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
