package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	svc := NewDashboardService(memory.NewDashboardRepository(store))

	empty, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalEmployees)
	assert.Zero(t, empty.AverageAttendance)
	assert.Equal(t, []dashboard.DepartmentCount{}, empty.DepartmentCounts)

	rows := []struct {
		dept       string
		status     employee.Status
		flagged    bool
		attendance float64
	}{
		{"Engineering", employee.StatusActive, false, 100},
		{"Engineering", employee.StatusActive, true, 80},
		{"Engineering", employee.StatusOnLeave, false, 90},
		{"Sales", employee.StatusInactive, false, 70},
	}
	for i, r := range rows {
		_, err := employees.Create(ctx, employee.Employee{
			EmployeeCode: employee.FormatCode(i + 1),
			Email:        fmt.Sprintf("d%d@staffhub.com", i),
			Department:   r.dept,
			Status:       r.status,
			IsFlagged:    r.flagged,
			Attendance:   r.attendance,
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalEmployees)
	assert.Equal(t, int64(2), stats.ActiveEmployees)
	assert.Equal(t, int64(1), stats.OnLeaveEmployees)
	assert.Equal(t, int64(1), stats.FlaggedEmployees)
	assert.InDelta(t, 85.0, stats.AverageAttendance, 0.0001)
	assert.Equal(t, []dashboard.DepartmentCount{
		{Department: "Engineering", Count: 3},
		{Department: "Sales", Count: 1},
	}, stats.DepartmentCounts)
}

type failingRepo struct {
	dashboard.DashboardRepository
}

func (failingRepo) CountFlagged(context.Context) (int64, error) {
	return 0, errors.New("connection reset")
}

func TestDashboardService_GetStats_PropagatesErrors(t *testing.T) {
	svc := NewDashboardService(failingRepo{DashboardRepository: memory.NewDashboardRepository(memory.NewStore())})

	_, err := svc.GetStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
