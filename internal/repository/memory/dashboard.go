package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context, status *employee.Status) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, e := range r.store.employees {
		if status == nil || e.Status == *status {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepository) CountFlagged(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, e := range r.store.employees {
		if e.IsFlagged {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepository) AverageAttendance(ctx context.Context) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if len(r.store.employees) == 0 {
		return 0, nil
	}
	var sum float64
	for _, e := range r.store.employees {
		sum += e.Attendance
	}
	return sum / float64(len(r.store.employees)), nil
}

func (r *dashboardRepository) DepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byDepartment := make(map[string]int64)
	for _, e := range r.store.employees {
		byDepartment[e.Department]++
	}

	counts := make([]dashboard.DepartmentCount, 0, len(byDepartment))
	for department, n := range byDepartment {
		counts = append(counts, dashboard.DepartmentCount{Department: department, Count: n})
	}
	slices.SortFunc(counts, func(a, b dashboard.DepartmentCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Department, b.Department)
	})
	return counts, nil
}
