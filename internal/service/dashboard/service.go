package dashboard

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats
	active := employee.StatusActive
	onLeave := employee.StatusOnLeave

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalEmployees, err = s.DashboardRepository.CountEmployees(gCtx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveEmployees, err = s.DashboardRepository.CountEmployees(gCtx, &active)
		return err
	})
	g.Go(func() (err error) {
		stats.OnLeaveEmployees, err = s.DashboardRepository.CountEmployees(gCtx, &onLeave)
		return err
	})
	g.Go(func() (err error) {
		stats.FlaggedEmployees, err = s.DashboardRepository.CountFlagged(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.AverageAttendance, err = s.DashboardRepository.AverageAttendance(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.DepartmentCounts, err = s.DashboardRepository.DepartmentCounts(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	if stats.DepartmentCounts == nil {
		stats.DepartmentCounts = []dashboard.DepartmentCount{}
	}
	return stats, nil
}
