package signup

import "context"

type SignupRequestRepository interface {
	// Create returns ErrSignupRequestExists when the email is already taken.
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	GetByEmail(ctx context.Context, email string) (Request, error)
	// List returns requests newest first, optionally narrowed to one status.
	List(ctx context.Context, status *Status) ([]Request, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Delete(ctx context.Context, id string) error
	// UpdateStatus only transitions rows that are still PENDING.
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) (Request, error)
}
