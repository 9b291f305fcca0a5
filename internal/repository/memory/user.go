package memory

import (
	"context"
	"errors"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
		if newUser.EmployeeID != nil && u.IsLinkedTo(*newUser.EmployeeID) {
			return user.User{}, user.ErrEmployeeLinked
		}
	}
	if newUser.Role == "" {
		newUser.Role = user.RoleEmployee
	}

	newUser.ID = r.store.newID()
	newUser.CreatedAt = r.store.now()
	r.store.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *userRepository) DeleteByEmployeeIDs(ctx context.Context, employeeIDs []string) (int64, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for id, u := range r.store.users {
		for _, employeeID := range employeeIDs {
			if u.IsLinkedTo(employeeID) {
				delete(r.store.users, id)
				n++
				break
			}
		}
	}
	return n, nil
}
