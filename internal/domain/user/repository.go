package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create returns ErrUserEmailExists or ErrEmployeeLinked on unique violations.
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) (int64, error)
}
