package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	transactor   database.Transactor
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	now          func() time.Time
}

func NewEmployeeService(
	transactor database.Transactor,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		transactor:   transactor,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// validIDs drops malformed and repeated ids, which can never match a row.
func validIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if !validator.IsValidUUID(id) || seen[id] {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
	}
	return valid
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeesResponse, error) {
	req.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, req)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	return employee.ListEmployeesResponse{
		Data:       employees,
		TotalCount: total,
		PageInfo:   employee.NewPageInfo(req.Page, req.PageSize, total),
	}, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.GetByID(ctx, id)
}

// GetByEmployeeCode implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	employeeCode = strings.TrimSpace(employeeCode)
	if !validator.IsValidEmployeeCode(employeeCode) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.GetByEmployeeCode(ctx, employeeCode)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.Employee{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrEmailExists
	}

	newEmployee := employee.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Age:         req.Age,
		DateOfBirth: req.DateOfBirth,
		Gender:      employee.GenderOther,
		Department:  req.Department,
		Position:    req.Position,
		Class:       req.Class,
		Subjects:    append([]string{}, req.Subjects...),
		Salary:      req.Salary,
		JoinDate:    s.now(),
		Status:      employee.StatusActive,
		Attendance:  100,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
	}
	if req.Gender != nil {
		newEmployee.Gender = *req.Gender
	}
	if req.Status != nil {
		newEmployee.Status = *req.Status
	}
	if req.JoinDate != nil {
		newEmployee.JoinDate = *req.JoinDate
	}
	if newEmployee.Avatar == nil {
		avatar := employee.DefaultAvatar(req.FirstName, req.LastName)
		newEmployee.Avatar = &avatar
	}

	return CreateWithNextCode(ctx, s.employeeRepo, newEmployee)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	principal, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if !principal.IsAdmin() {
		if principal.EmployeeID == nil || *principal.EmployeeID != current.ID {
			return employee.Employee{}, employee.ErrNotOwnProfile
		}
		if field, restricted := req.RestrictedField(); restricted {
			return employee.Employee{}, &employee.RestrictedFieldError{Field: field}
		}
	}

	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if err := req.ValidateFlag(current); err != nil {
		return employee.Employee{}, err
	}

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
		}
		if exists {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	req.Apply(&current)
	return s.employeeRepo.Update(ctx, current)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return err
	}
	if !validator.IsValidUUID(id) {
		return employee.ErrEmployeeNotFound
	}

	return s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.DeleteByEmployeeIDs(txCtx, []string{id}); err != nil {
			return fmt.Errorf("failed to delete linked user: %w", err)
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}

// Flag implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Flag(ctx context.Context, id string, reason string) (employee.Employee, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.Employee{}, err
	}
	if validator.IsEmpty(reason) {
		return employee.Employee{}, employee.ErrFlagReasonRequired
	}
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.SetFlag(ctx, id, true, &reason)
}

// Unflag implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Unflag(ctx context.Context, id string) (employee.Employee, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.Employee{}, err
	}
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.SetFlag(ctx, id, false, nil)
}

// BulkDelete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return 0, err
	}
	ids = validIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.DeleteByEmployeeIDs(txCtx, ids); err != nil {
			return fmt.Errorf("failed to delete linked users: %w", err)
		}
		var err error
		deleted, err = s.employeeRepo.DeleteMany(txCtx, ids)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// BulkUpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkUpdateStatus(ctx context.Context, ids []string, status employee.Status) (int64, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return 0, err
	}
	if !status.Valid() {
		return 0, validator.ValidationErrors{{Field: "status", Message: "status is invalid"}}
	}
	ids = validIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	return s.employeeRepo.UpdateStatusMany(ctx, ids, status)
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.DistinctDepartments(ctx)
}

// Positions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Positions(ctx context.Context) ([]string, error) {
	return s.employeeRepo.DistinctPositions(ctx)
}
