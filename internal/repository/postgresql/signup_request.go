package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

const signupRequestColumns = `
	id, email, password_hash, first_name, last_name, phone, age, gender,
	address, city, state, country, zip_code, status, rejection_reason, created_at`

type signupRequestRepositoryImpl struct {
	db *database.DB
}

func NewSignupRequestRepository(db *database.DB) signup.SignupRequestRepository {
	return &signupRequestRepositoryImpl{db: db}
}

func scanSignupRequest(row rowScanner) (signup.Request, error) {
	var r signup.Request
	err := row.Scan(
		&r.ID, &r.Email, &r.PasswordHash, &r.FirstName, &r.LastName, &r.Phone, &r.Age, &r.Gender,
		&r.Address, &r.City, &r.State, &r.Country, &r.ZipCode, &r.Status, &r.RejectionReason, &r.CreatedAt,
	)
	return r, err
}

// Create implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) Create(ctx context.Context, req signup.Request) (signup.Request, error) {
	query := `
		INSERT INTO signup_requests (
			email, password_hash, first_name, last_name, phone, age, gender,
			address, city, state, country, zip_code, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + signupRequestColumns

	var created signup.Request
	err := withSavepoint(ctx, s.db, func(q database.Querier) error {
		var err error
		created, err = scanSignupRequest(q.QueryRow(ctx, query,
			req.Email, req.PasswordHash, req.FirstName, req.LastName, req.Phone, req.Age, string(req.Gender),
			req.Address, req.City, req.State, req.Country, req.ZipCode, string(req.Status),
		))
		return err
	})
	if err != nil {
		if constraint, ok := uniqueConstraint(err); ok && constraint == "signup_requests_email_key" {
			return signup.Request{}, signup.ErrSignupRequestExists
		}
		return signup.Request{}, fmt.Errorf("failed to create signup request: %w", err)
	}
	return created, nil
}

// GetByID implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) GetByID(ctx context.Context, id string) (signup.Request, error) {
	return s.getOne(ctx, `SELECT`+signupRequestColumns+` FROM signup_requests WHERE id = $1`, id)
}

// GetByEmail implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) GetByEmail(ctx context.Context, email string) (signup.Request, error) {
	return s.getOne(ctx, `SELECT`+signupRequestColumns+` FROM signup_requests WHERE email = $1`, email)
}

func (s *signupRequestRepositoryImpl) getOne(ctx context.Context, query string, arg string) (signup.Request, error) {
	q := GetQuerier(ctx, s.db)

	found, err := scanSignupRequest(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return signup.Request{}, signup.ErrSignupRequestNotFound
		}
		return signup.Request{}, fmt.Errorf("failed to get signup request: %w", err)
	}
	return found, nil
}

// List implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) List(ctx context.Context, status *signup.Status) ([]signup.Request, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT` + signupRequestColumns + ` FROM signup_requests`
	var args []interface{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list signup requests: %w", err)
	}
	defer rows.Close()

	requests := []signup.Request{}
	for rows.Next() {
		r, err := scanSignupRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signup request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate signup requests: %w", err)
	}
	return requests, nil
}

// CountByStatus implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) CountByStatus(ctx context.Context, status signup.Status) (int64, error) {
	q := GetQuerier(ctx, s.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM signup_requests WHERE status = $1`, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count signup requests: %w", err)
	}
	return count, nil
}

// Delete implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM signup_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete signup request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return signup.ErrSignupRequestNotFound
	}
	return nil
}

// UpdateStatus implements signup.SignupRequestRepository.
func (s *signupRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status signup.Status, rejectionReason *string) (signup.Request, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE signup_requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING` + signupRequestColumns

	updated, err := scanSignupRequest(q.QueryRow(ctx, query, id, string(status), rejectionReason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing row from one another admin already decided.
			if _, getErr := s.GetByID(ctx, id); getErr != nil {
				return signup.Request{}, getErr
			}
			return signup.Request{}, signup.ErrAlreadyProcessed
		}
		return signup.Request{}, fmt.Errorf("failed to update signup request status: %w", err)
	}
	return updated, nil
}
