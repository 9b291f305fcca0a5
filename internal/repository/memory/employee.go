package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

// checkUnique reports the first unique key of e already held by another row.
func (r *employeeRepository) checkUnique(e employee.Employee) error {
	for _, other := range r.store.employees {
		if other.ID == e.ID {
			continue
		}
		if other.EmployeeCode == e.EmployeeCode {
			return employee.ErrEmployeeCodeExists
		}
		if other.Email == e.Email {
			return employee.ErrEmailExists
		}
	}
	return nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newEmployee.ID = r.store.newID()
	if err := r.checkUnique(newEmployee); err != nil {
		return employee.Employee{}, err
	}

	now := r.store.now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	if newEmployee.JoinDate.IsZero() {
		newEmployee.JoinDate = now
	}
	if newEmployee.Gender == "" {
		newEmployee.Gender = employee.GenderOther
	}
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	if !newEmployee.IsFlagged {
		newEmployee.FlagReason = nil
	}

	stored := cloneEmployee(newEmployee)
	r.store.employees[stored.ID] = stored
	return cloneEmployee(stored), nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *employeeRepository) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := []employee.Employee{}
	for _, id := range ids {
		if e, ok := r.store.employees[id]; ok {
			found = append(found, cloneEmployee(e))
		}
	}
	return found, nil
}

func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.EmployeeCode == employeeCode {
			return cloneEmployee(e), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepository) MaxCodeSuffix(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	maxSuffix := 0
	for _, e := range r.store.employees {
		if n, ok := employee.ParseCode(e.EmployeeCode); ok && n > maxSuffix {
			maxSuffix = n
		}
	}
	return maxSuffix, nil
}

func matches(e employee.Employee, f employee.EmployeeFilter) bool {
	if f.Search != nil && *f.Search != "" {
		needle := strings.ToLower(*f.Search)
		hit := false
		for _, field := range []string{e.FirstName, e.LastName, e.Email, e.EmployeeCode, e.Department, e.Position} {
			if strings.Contains(strings.ToLower(field), needle) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if f.Department != nil && *f.Department != "" && e.Department != *f.Department {
		return false
	}
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	if f.Gender != nil && e.Gender != *f.Gender {
		return false
	}
	if f.IsFlagged != nil && e.IsFlagged != *f.IsFlagged {
		return false
	}
	if f.MinAge != nil && e.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && e.Age > *f.MaxAge {
		return false
	}
	if f.MinAttendance != nil && e.Attendance < *f.MinAttendance {
		return false
	}
	if f.MaxAttendance != nil && e.Attendance > *f.MaxAttendance {
		return false
	}
	return true
}

// compareBy orders two employees on one field. A missing salary sorts after
// every present one, as NULL does in PostgreSQL.
func compareBy(field employee.SortField, a, b employee.Employee) int {
	switch field {
	case employee.SortByName:
		return cmp.Compare(a.FirstName, b.FirstName)
	case employee.SortByEmail:
		return cmp.Compare(a.Email, b.Email)
	case employee.SortByAge:
		return cmp.Compare(a.Age, b.Age)
	case employee.SortByDepartment:
		return cmp.Compare(a.Department, b.Department)
	case employee.SortByPosition:
		return cmp.Compare(a.Position, b.Position)
	case employee.SortByJoinDate:
		return a.JoinDate.Compare(b.JoinDate)
	case employee.SortBySalary:
		switch {
		case a.Salary == nil && b.Salary == nil:
			return 0
		case a.Salary == nil:
			return 1
		case b.Salary == nil:
			return -1
		}
		return a.Salary.Cmp(*b.Salary)
	case employee.SortByAttendance:
		return cmp.Compare(a.Attendance, b.Attendance)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (r *employeeRepository) List(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.Employee, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []employee.Employee{}
	for _, e := range r.store.employees {
		if matches(e, req.Filter) {
			matched = append(matched, e)
		}
	}

	slices.SortFunc(matched, func(a, b employee.Employee) int {
		c := compareBy(req.SortBy, a, b)
		if req.SortOrder != employee.SortAsc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	total := int64(len(matched))
	start := min(req.Offset(), len(matched))
	end := min(start+req.PageSize, len(matched))

	page := make([]employee.Employee, 0, end-start)
	for _, e := range matched[start:end] {
		page = append(page, cloneEmployee(e))
	}
	return page, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.employees[e.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err := r.checkUnique(e); err != nil {
		return employee.Employee{}, err
	}

	e.EmployeeCode = current.EmployeeCode
	e.JoinDate = current.JoinDate
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = r.store.now()
	if !e.IsFlagged {
		e.FlagReason = nil
	}

	stored := cloneEmployee(e)
	r.store.employees[e.ID] = stored
	return cloneEmployee(stored), nil
}

func (r *employeeRepository) SetFlag(ctx context.Context, id string, isFlagged bool, reason *string) (employee.Employee, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.IsFlagged = isFlagged
	e.FlagReason = reason
	if !isFlagged {
		e.FlagReason = nil
	}
	e.UpdatedAt = r.store.now()

	r.store.employees[id] = e
	return cloneEmployee(e), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.store.employees, id)
	return nil
}

func (r *employeeRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := r.store.employees[id]; ok {
			delete(r.store.employees, id)
			n++
		}
	}
	return n, nil
}

func (r *employeeRepository) UpdateStatusMany(ctx context.Context, ids []string, status employee.Status) (int64, error) {
	defer r.store.lockWrites(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	now := r.store.now()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		e, ok := r.store.employees[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		e.Status = status
		e.UpdatedAt = now
		r.store.employees[id] = e
		n++
	}
	return n, nil
}

func (r *employeeRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	return r.distinct(func(e employee.Employee) string { return e.Department }), nil
}

func (r *employeeRepository) DistinctPositions(ctx context.Context) ([]string, error) {
	return r.distinct(func(e employee.Employee) string { return e.Position }), nil
}

func (r *employeeRepository) distinct(field func(employee.Employee) string) []string {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	values := []string{}
	for _, e := range r.store.employees {
		values = append(values, field(e))
	}
	slices.Sort(values)
	return slices.Compact(values)
}
