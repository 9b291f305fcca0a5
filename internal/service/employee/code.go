package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

// codeAllocationAttempts bounds retries when a concurrent create takes the
// code we computed.
const codeAllocationAttempts = 3

// CreateWithNextCode assigns the next EMP### code and inserts e. The unique
// index on employee_code detects a concurrent allocation, which is retried
// with a fresh maximum.
func CreateWithNextCode(ctx context.Context, repo employee.EmployeeRepository, e employee.Employee) (employee.Employee, error) {
	for attempt := 0; attempt < codeAllocationAttempts; attempt++ {
		maxSuffix, err := repo.MaxCodeSuffix(ctx)
		if err != nil {
			return employee.Employee{}, err
		}
		e.EmployeeCode = employee.NextCode(maxSuffix)

		created, err := repo.Create(ctx, e)
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			continue
		}
		if err != nil {
			return employee.Employee{}, err
		}
		return created, nil
	}
	return employee.Employee{}, fmt.Errorf("%w after %d attempts", employee.ErrCodeAllocationFailed, codeAllocationAttempts)
}
