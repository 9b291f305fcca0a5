package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, req ListEmployeesRequest) (ListEmployeesResponse, error)
	// GetByID returns ErrEmployeeNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	Flag(ctx context.Context, id string, reason string) (Employee, error)
	Unflag(ctx context.Context, id string) (Employee, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	BulkUpdateStatus(ctx context.Context, ids []string, status Status) (int64, error)
	Departments(ctx context.Context) ([]string, error)
	Positions(ctx context.Context) ([]string, error)
}
