package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
)

type signupRequestRepository struct {
	store *Store
}

func NewSignupRequestRepository(store *Store) signup.SignupRequestRepository {
	return &signupRequestRepository{store: store}
}

func (r *signupRequestRepository) Create(ctx context.Context, req signup.Request) (signup.Request, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.signups {
		if existing.Email == req.Email {
			return signup.Request{}, signup.ErrSignupRequestExists
		}
	}
	if req.Status == "" {
		req.Status = signup.StatusPending
	}

	req.ID = r.store.newID()
	req.CreatedAt = r.store.now()
	r.store.signups[req.ID] = req
	return req, nil
}

func (r *signupRequestRepository) GetByID(ctx context.Context, id string) (signup.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	req, ok := r.store.signups[id]
	if !ok {
		return signup.Request{}, signup.ErrSignupRequestNotFound
	}
	return req, nil
}

func (r *signupRequestRepository) GetByEmail(ctx context.Context, email string) (signup.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, req := range r.store.signups {
		if req.Email == email {
			return req, nil
		}
	}
	return signup.Request{}, signup.ErrSignupRequestNotFound
}

func (r *signupRequestRepository) List(ctx context.Context, status *signup.Status) ([]signup.Request, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	requests := []signup.Request{}
	for _, req := range r.store.signups {
		if status == nil || req.Status == *status {
			requests = append(requests, req)
		}
	}
	slices.SortFunc(requests, func(a, b signup.Request) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return requests, nil
}

func (r *signupRequestRepository) CountByStatus(ctx context.Context, status signup.Status) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, req := range r.store.signups {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *signupRequestRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.signups[id]; !ok {
		return signup.ErrSignupRequestNotFound
	}
	delete(r.store.signups, id)
	return nil
}

func (r *signupRequestRepository) UpdateStatus(ctx context.Context, id string, status signup.Status, rejectionReason *string) (signup.Request, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	req, ok := r.store.signups[id]
	if !ok {
		return signup.Request{}, signup.ErrSignupRequestNotFound
	}
	if !req.IsPending() {
		return signup.Request{}, signup.ErrAlreadyProcessed
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	r.store.signups[id] = req
	return req, nil
}
