package postgresql_test

import (
	"context"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSignupRequest(email string) signup.Request {
	return signup.Request{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "New",
		LastName:     "Hire",
		Age:          28,
		Gender:       employee.GenderFemale,
		Status:       signup.StatusPending,
	}
}

func TestSignupRequestRepository_Lifecycle(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewSignupRequestRepository(db)

	created, err := repo.Create(ctx, newTestSignupRequest("hire@staffhub.com"))
	require.NoError(t, err)
	assert.Equal(t, signup.StatusPending, created.Status)

	_, err = repo.Create(ctx, newTestSignupRequest("hire@staffhub.com"))
	assert.ErrorIs(t, err, signup.ErrSignupRequestExists)

	count, err := repo.CountByStatus(ctx, signup.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	reason := "not hiring"
	rejected, err := repo.UpdateStatus(ctx, created.ID, signup.StatusRejected, &reason)
	require.NoError(t, err)
	assert.Equal(t, signup.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)

	_, err = repo.UpdateStatus(ctx, created.ID, signup.StatusApproved, nil)
	assert.ErrorIs(t, err, signup.ErrAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", signup.StatusApproved, nil)
	assert.ErrorIs(t, err, signup.ErrSignupRequestNotFound)

	status := signup.StatusRejected
	list, err := repo.List(ctx, &status)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByEmail(ctx, "hire@staffhub.com")
	assert.ErrorIs(t, err, signup.ErrSignupRequestNotFound)
}
