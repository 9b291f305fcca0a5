package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

const employeeColumns = `
	id, employee_code, first_name, last_name, email, phone, avatar, age, date_of_birth, gender,
	department, position, class, subjects, salary, join_date, status, is_flagged, flag_reason,
	attendance, address, city, state, country, zip_code, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Avatar, &e.Age,
		&e.DateOfBirth, &e.Gender, &e.Department, &e.Position, &e.Class, &e.Subjects, &e.Salary,
		&e.JoinDate, &e.Status, &e.IsFlagged, &e.FlagReason, &e.Attendance, &e.Address, &e.City,
		&e.State, &e.Country, &e.ZipCode, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

func mapEmployeeWriteError(err error) error {
	if constraint, ok := uniqueConstraint(err); ok {
		switch constraint {
		case "employees_email_key":
			return employee.ErrEmailExists
		case "employees_employee_code_key":
			return employee.ErrEmployeeCodeExists
		}
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			employee_code, first_name, last_name, email, phone, avatar, age, date_of_birth, gender,
			department, position, class, subjects, salary, join_date, status, is_flagged, flag_reason,
			attendance, address, city, state, country, zip_code
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24
		)
		RETURNING` + employeeColumns

	var created employee.Employee
	err := withSavepoint(ctx, e.db, func(q database.Querier) error {
		var err error
		created, err = scanEmployee(q.QueryRow(ctx, query,
			newEmployee.EmployeeCode, newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
			newEmployee.Phone, newEmployee.Avatar, newEmployee.Age, newEmployee.DateOfBirth, newEmployee.Gender,
			newEmployee.Department, newEmployee.Position, newEmployee.Class, newEmployee.Subjects,
			newEmployee.Salary, newEmployee.JoinDate, newEmployee.Status, newEmployee.IsFlagged,
			newEmployee.FlagReason, newEmployee.Attendance, newEmployee.Address, newEmployee.City,
			newEmployee.State, newEmployee.Country, newEmployee.ZipCode,
		))
		return err
	})
	if err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return found, nil
}

// GetByIDs implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return []employee.Employee{}, nil
	}
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE id = ANY($1::uuid[])`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by ids: %w", err)
	}
	return collectEmployees(rows)
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return found, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

// MaxCodeSuffix implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) MaxCodeSuffix(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(employee_code FROM 4) AS INTEGER)), 0)
		FROM employees
		WHERE employee_code ~ $1
	`
	pattern := fmt.Sprintf("^EMP[0-9]{1,%d}$", employee.MaxCodeDigits)

	var maxSuffix int
	if err := q.QueryRow(ctx, query, pattern).Scan(&maxSuffix); err != nil {
		return 0, fmt.Errorf("failed to read max employee code: %w", err)
	}
	return maxSuffix, nil
}

var validSortColumns = map[employee.SortField]string{
	employee.SortByName:       "first_name",
	employee.SortByEmail:      "email",
	employee.SortByAge:        "age",
	employee.SortByDepartment: "department",
	employee.SortByPosition:   "position",
	employee.SortByJoinDate:   "join_date",
	employee.SortBySalary:     "salary",
	employee.SortByAttendance: "attendance",
	employee.SortByCreatedAt:  "created_at",
}

// likePattern escapes LIKE wildcards so search is a plain substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	f := req.Filter
	if f.Search != nil && *f.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%[1]d OR last_name ILIKE $%[1]d OR email ILIKE $%[1]d OR employee_code ILIKE $%[1]d OR department ILIKE $%[1]d OR position ILIKE $%[1]d)",
			argIdx))
		args = append(args, likePattern(*f.Search))
		argIdx++
	}
	if f.Department != nil && *f.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *f.Department)
		argIdx++
	}
	if f.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(*f.Status))
		argIdx++
	}
	if f.Gender != nil {
		conditions = append(conditions, fmt.Sprintf("gender = $%d", argIdx))
		args = append(args, string(*f.Gender))
		argIdx++
	}
	if f.IsFlagged != nil {
		conditions = append(conditions, fmt.Sprintf("is_flagged = $%d", argIdx))
		args = append(args, *f.IsFlagged)
		argIdx++
	}
	if f.MinAge != nil {
		conditions = append(conditions, fmt.Sprintf("age >= $%d", argIdx))
		args = append(args, *f.MinAge)
		argIdx++
	}
	if f.MaxAge != nil {
		conditions = append(conditions, fmt.Sprintf("age <= $%d", argIdx))
		args = append(args, *f.MaxAge)
		argIdx++
	}
	if f.MinAttendance != nil {
		conditions = append(conditions, fmt.Sprintf("attendance >= $%d", argIdx))
		args = append(args, *f.MinAttendance)
		argIdx++
	}
	if f.MaxAttendance != nil {
		conditions = append(conditions, fmt.Sprintf("attendance <= $%d", argIdx))
		args = append(args, *f.MaxAttendance)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	sortColumn, ok := validSortColumns[req.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	sortOrder := "DESC"
	if req.SortOrder == employee.SortAsc {
		sortOrder = "ASC"
	}

	// Count and page are read in one snapshot so totalCount matches data.
	var (
		total     int64
		employees []employee.Employee
	)
	err := e.readSnapshot(ctx, q, func(q database.Querier) error {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
		if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}

		query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d`,
			employeeColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
		pageArgs := append(append([]interface{}{}, args...), req.PageSize, req.Offset())

		rows, err := q.Query(ctx, query, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees, err = collectEmployees(rows)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// readSnapshot runs fn in a repeatable read transaction unless one is already open.
func (e *employeeRepositoryImpl) readSnapshot(ctx context.Context, q database.Querier, fn func(q database.Querier) error) error {
	if _, inTx := q.(pgx.Tx); inTx {
		return fn(q)
	}
	return pgx.BeginTxFunc(ctx, e.db.Pool, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		return fn(tx)
	})
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, phone = $5, avatar = $6, age = $7,
			date_of_birth = $8, gender = $9, department = $10, position = $11, class = $12,
			subjects = $13, salary = $14, status = $15, is_flagged = $16, flag_reason = $17,
			attendance = $18, address = $19, city = $20, state = $21, country = $22, zip_code = $23,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + employeeColumns

	var updated employee.Employee
	err := withSavepoint(ctx, e.db, func(q database.Querier) error {
		var err error
		updated, err = scanEmployee(q.QueryRow(ctx, query,
			emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Avatar, emp.Age,
			emp.DateOfBirth, emp.Gender, emp.Department, emp.Position, emp.Class,
			emp.Subjects, emp.Salary, emp.Status, emp.IsFlagged, emp.FlagReason,
			emp.Attendance, emp.Address, emp.City, emp.State, emp.Country, emp.ZipCode,
		))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if mapped := mapEmployeeWriteError(err); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", emp.ID, err)
	}
	return updated, nil
}

// SetFlag implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetFlag(ctx context.Context, id string, isFlagged bool, reason *string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if !isFlagged {
		reason = nil
	}
	query := `UPDATE employees SET is_flagged = $2, flag_reason = $3, updated_at = NOW() WHERE id = $1 RETURNING` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, id, isFlagged, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to set flag on employee %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeleteMany implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employees: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateStatusMany implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatusMany(ctx context.Context, ids []string, status employee.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET status = $2, updated_at = NOW() WHERE id = ANY($1::uuid[])`, ids, string(status))
	if err != nil {
		return 0, fmt.Errorf("failed to update employee status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DistinctDepartments implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DistinctDepartments(ctx context.Context) ([]string, error) {
	return e.distinct(ctx, "department")
}

// DistinctPositions implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DistinctPositions(ctx context.Context) ([]string, error) {
	return e.distinct(ctx, "position")
}

func (e *employeeRepositoryImpl) distinct(ctx context.Context, column string) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT DISTINCT %[1]s FROM employees ORDER BY %[1]s ASC`, column))
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan distinct %s: %w", column, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// withSavepoint runs a write in a savepoint when inside a transaction, so a
// constraint violation does not abort the surrounding transaction.
func withSavepoint(ctx context.Context, db *database.DB, fn func(q database.Querier) error) error {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return fn(db.Pool)
	}
	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin savepoint: %w", err)
	}
	if err := fn(sp); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	return sp.Commit(ctx)
}
