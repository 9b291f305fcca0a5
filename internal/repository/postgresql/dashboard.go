package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context, status *employee.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM employees`
	var args []interface{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountFlagged implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountFlagged(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_flagged`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count flagged employees: %w", err)
	}
	return count, nil
}

// AverageAttendance implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) AverageAttendance(ctx context.Context) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	if err := q.QueryRow(ctx, `SELECT COALESCE(AVG(attendance), 0)::float8 FROM employees`).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to get average attendance: %w", err)
	}
	return avg, nil
}

// DepartmentCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) DepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*) AS count
		FROM employees
		GROUP BY department
		ORDER BY count DESC, department ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department counts: %w", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dashboard.DepartmentCount, error) {
		var dc dashboard.DepartmentCount
		err := row.Scan(&dc.Department, &dc.Count)
		return dc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan department counts: %w", err)
	}
	if counts == nil {
		counts = []dashboard.DepartmentCount{}
	}
	return counts, nil
}
