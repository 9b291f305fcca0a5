package auth

import (
	"context"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	_, err := RequireAuthenticated(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()

	_, err := RequireAdmin(ctx)
	assert.ErrorIs(t, err, ErrAuthRequired)

	employeeCtx := WithPrincipal(ctx, Principal{UserID: "u1", Role: user.RoleEmployee})
	_, err = RequireAdmin(employeeCtx)
	assert.ErrorIs(t, err, ErrAdminAccessRequired)

	p, err := RequireAuthenticated(employeeCtx)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)

	adminCtx := WithPrincipal(ctx, Principal{UserID: "a1", Role: user.RoleAdmin})
	p, err = RequireAdmin(adminCtx)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())
}

func TestRegisterRequest_Validate(t *testing.T) {
	role := user.Role("OWNER")
	req := RegisterRequest{Email: "bad", Password: "123", Role: &role}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "role")

	ok := RegisterRequest{Email: "admin@staffhub.com", Password: "admin123"}
	assert.NoError(t, ok.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.Error(t, (&LoginRequest{}).Validate())
	assert.NoError(t, (&LoginRequest{Email: "a@b.co", Password: "x"}).Validate())
}
