// Package memory keeps the directory in process memory. It backs the
// DB_DRIVER=memory mode and the service tests, and mirrors the PostgreSQL
// repositories' ordering and uniqueness rules.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// Store is the shared state behind every memory repository.
type Store struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	users     map[string]user.User
	signups   map[string]signup.Request

	// txMu serializes transactions with each other and with writes made
	// outside one, so a rollback only undoes its own transaction.
	txMu sync.Mutex

	now   func() time.Time
	newID func() string
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		users:     make(map[string]user.User),
		signups:   make(map[string]signup.Request),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

type snapshot struct {
	employees map[string]employee.Employee
	users     map[string]user.User
	signups   map[string]signup.Request
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		employees: maps.Clone(s.employees),
		users:     maps.Clone(s.users),
		signups:   maps.Clone(s.signups),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = snap.employees
	s.users = snap.users
	s.signups = snap.signups
}

// cloneEmployee detaches the mutable slice so callers cannot alter stored rows.
func cloneEmployee(e employee.Employee) employee.Employee {
	if e.Subjects != nil {
		e.Subjects = slices.Clone(e.Subjects)
	}
	return e
}
