package dashboard

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees counts all employees, or those with the given status.
	CountEmployees(ctx context.Context, status *employee.Status) (int64, error)
	CountFlagged(ctx context.Context) (int64, error)
	// AverageAttendance returns 0 when there are no employees.
	AverageAttendance(ctx context.Context) (float64, error)
	// DepartmentCounts returns head counts ordered by count descending.
	DepartmentCounts(ctx context.Context) ([]DepartmentCount, error)
}
