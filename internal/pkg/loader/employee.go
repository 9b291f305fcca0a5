package loader

import (
	"context"
	"sync"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"golang.org/x/sync/singleflight"
)

// EmployeeFetcher is the batch lookup the loader coalesces onto.
type EmployeeFetcher interface {
	GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error)
}

// EmployeeLoader memoizes employee lookups for the lifetime of one request.
// Concurrent loads of the same id share a single fetch. Unknown ids are
// cached as misses.
type EmployeeLoader struct {
	fetcher EmployeeFetcher
	group   singleflight.Group

	mu    sync.RWMutex
	cache map[string]*employee.Employee
}

func NewEmployeeLoader(fetcher EmployeeFetcher) *EmployeeLoader {
	return &EmployeeLoader{
		fetcher: fetcher,
		cache:   make(map[string]*employee.Employee),
	}
}

// Load returns the employee with the given id, or nil when it does not exist.
func (l *EmployeeLoader) Load(ctx context.Context, id string) (*employee.Employee, error) {
	if e, ok := l.cached(id); ok {
		return e, nil
	}

	v, err, _ := l.group.Do(id, func() (interface{}, error) {
		if e, ok := l.cached(id); ok {
			return e, nil
		}
		found, err := l.fetcher.GetByIDs(ctx, []string{id})
		if err != nil {
			return nil, err
		}
		l.store([]string{id}, found)
		e, _ := l.cached(id)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*employee.Employee), nil
}

// Prime seeds the cache with an already loaded employee.
func (l *EmployeeLoader) Prime(e employee.Employee) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[e.ID] = &e
}

// Clear drops a cached entry after the employee was changed or removed.
func (l *EmployeeLoader) Clear(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, id)
}

func (l *EmployeeLoader) cached(id string) (*employee.Employee, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.cache[id]
	return e, ok
}

func (l *EmployeeLoader) store(requested []string, found []employee.Employee) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range requested {
		l.cache[id] = nil
	}
	for i := range found {
		e := found[i]
		l.cache[e.ID] = &e
	}
}

type loaderKey struct{}

func WithEmployeeLoader(ctx context.Context, l *EmployeeLoader) context.Context {
	return context.WithValue(ctx, loaderKey{}, l)
}

// EmployeeLoaderFromContext returns the request's loader, if one was attached.
func EmployeeLoaderFromContext(ctx context.Context) (*EmployeeLoader, bool) {
	l, ok := ctx.Value(loaderKey{}).(*EmployeeLoader)
	return l, ok
}
