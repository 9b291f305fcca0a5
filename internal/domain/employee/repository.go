package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee. The caller assigns EmployeeCode; a clash
	// returns ErrEmployeeCodeExists and a duplicate email ErrEmailExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// MaxCodeSuffix returns the highest numeric EMP### suffix in use, 0 when empty.
	MaxCodeSuffix(ctx context.Context) (int, error)
	// List returns one page of matches plus the unpaginated match count.
	List(ctx context.Context, req ListEmployeesRequest) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	SetFlag(ctx context.Context, id string, isFlagged bool, reason *string) (Employee, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	UpdateStatusMany(ctx context.Context, ids []string, status Status) (int64, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
	DistinctPositions(ctx context.Context) ([]string, error)
}
