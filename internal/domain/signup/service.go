package signup

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type SignupService interface {
	Submit(ctx context.Context, req SubmitRequest) (Request, error)
	Approve(ctx context.Context, id string, req ApproveRequest) (employee.Employee, error)
	Reject(ctx context.Context, id string, reason string) (Request, error)
	// List and PendingCount return empty results for non-admin callers.
	List(ctx context.Context, status *Status) ([]Request, error)
	PendingCount(ctx context.Context) (int64, error)
}
