package signup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	authservice "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	employeeservice "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	"golang.org/x/crypto/bcrypt"
)

type SignupServiceImpl struct {
	transactor   database.Transactor
	signupRepo   signup.SignupRequestRepository
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	hashCost     int
	now          func() time.Time
}

func NewSignupService(
	transactor database.Transactor,
	signupRepo signup.SignupRequestRepository,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
) signup.SignupService {
	return &SignupServiceImpl{
		transactor:   transactor,
		signupRepo:   signupRepo,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		hashCost:     authservice.HashCost,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit implements signup.SignupService.
func (s *SignupServiceImpl) Submit(ctx context.Context, req signup.SubmitRequest) (signup.Request, error) {
	if err := req.Validate(); err != nil {
		return signup.Request{}, err
	}

	userExists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return signup.Request{}, fmt.Errorf("failed to check user email: %w", err)
	}
	if userExists {
		return signup.Request{}, user.ErrUserEmailExists
	}

	employeeExists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return signup.Request{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if employeeExists {
		return signup.Request{}, employee.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return signup.Request{}, fmt.Errorf("failed to hash password: %w", err)
	}

	gender := employee.GenderOther
	if req.Gender != nil {
		gender = *req.Gender
	}

	var created signup.Request
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.signupRepo.GetByEmail(txCtx, req.Email)
		switch {
		case errors.Is(err, signup.ErrSignupRequestNotFound):
		case err != nil:
			return err
		case existing.IsPending():
			return signup.ErrPendingRequestExists
		case existing.Status == signup.StatusRejected:
			// A rejected applicant may apply again; the new request supersedes the old one.
			if err := s.signupRepo.Delete(txCtx, existing.ID); err != nil {
				return fmt.Errorf("failed to remove rejected signup request: %w", err)
			}
		}

		created, err = s.signupRepo.Create(txCtx, signup.Request{
			Email:        req.Email,
			PasswordHash: string(hashed),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Phone:        req.Phone,
			Age:          req.Age,
			Gender:       gender,
			Address:      req.Address,
			City:         req.City,
			State:        req.State,
			Country:      req.Country,
			ZipCode:      req.ZipCode,
			Status:       signup.StatusPending,
		})
		return err
	})
	if err != nil {
		return signup.Request{}, err
	}
	return created, nil
}

// Approve implements signup.SignupService.
func (s *SignupServiceImpl) Approve(ctx context.Context, id string, req signup.ApproveRequest) (employee.Employee, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.Employee{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, signup.ErrSignupRequestNotFound
	}

	var approved employee.Employee
	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.signupRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !request.IsPending() {
			return signup.ErrAlreadyProcessed
		}

		avatar := employee.DefaultAvatar(request.FirstName, request.LastName)
		approved, err = employeeservice.CreateWithNextCode(txCtx, s.employeeRepo, employee.Employee{
			FirstName:  request.FirstName,
			LastName:   request.LastName,
			Email:      request.Email,
			Phone:      request.Phone,
			Avatar:     &avatar,
			Age:        request.Age,
			Gender:     request.Gender,
			Department: req.Department,
			Position:   req.Position,
			Class:      req.Class,
			Subjects:   []string{},
			Salary:     req.Salary,
			JoinDate:   s.now(),
			Status:     employee.StatusActive,
			Attendance: 100,
			Address:    request.Address,
			City:       request.City,
			State:      request.State,
			Country:    request.Country,
			ZipCode:    request.ZipCode,
		})
		if err != nil {
			return err
		}

		// The applicant keeps the password chosen at submission.
		if _, err := s.userRepo.Create(txCtx, user.User{
			Email:        request.Email,
			PasswordHash: request.PasswordHash,
			Role:         user.RoleEmployee,
			EmployeeID:   &approved.ID,
		}); err != nil {
			return err
		}

		_, err = s.signupRepo.UpdateStatus(txCtx, id, signup.StatusApproved, nil)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return approved, nil
}

// Reject implements signup.SignupService.
func (s *SignupServiceImpl) Reject(ctx context.Context, id string, reason string) (signup.Request, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return signup.Request{}, err
	}
	if validator.IsEmpty(reason) {
		return signup.Request{}, signup.ErrRejectionReasonRequired
	}
	if !validator.IsValidUUID(id) {
		return signup.Request{}, signup.ErrSignupRequestNotFound
	}
	return s.signupRepo.UpdateStatus(ctx, id, signup.StatusRejected, &reason)
}

// List implements signup.SignupService.
func (s *SignupServiceImpl) List(ctx context.Context, status *signup.Status) ([]signup.Request, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return []signup.Request{}, nil
	}
	return s.signupRepo.List(ctx, status)
}

// PendingCount implements signup.SignupService.
func (s *SignupServiceImpl) PendingCount(ctx context.Context) (int64, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return 0, nil
	}
	return s.signupRepo.CountByStatus(ctx, signup.StatusPending)
}
