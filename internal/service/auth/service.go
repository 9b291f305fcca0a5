package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor for stored passwords.
const HashCost = 12

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	hashCost int

	// dummyHash is compared against when the email is unknown so both login
	// failures take the same time.
	dummyHash func() []byte
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	a := &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		hashCost:       HashCost,
	}
	a.dummyHash = sync.OnceValue(func() []byte {
		hash, _ := bcrypt.GenerateFromPassword([]byte("staffhub-dummy-password"), a.hashCost)
		return hash
	})
	return a
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issue(u user.User) (auth.AuthPayload, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.AuthPayload{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.AuthPayload{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthPayload, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthPayload{}, err
	}

	role := user.RoleEmployee
	if req.Role != nil {
		role = *req.Role
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthPayload{}, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return auth.AuthPayload{}, user.ErrUserEmailExists
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.AuthPayload{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
	})
	if err != nil {
		return auth.AuthPayload{}, err
	}

	return a.issue(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthPayload, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthPayload{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash(), []byte(req.Password))
			return auth.AuthPayload{}, auth.ErrInvalidCredentials
		}
		return auth.AuthPayload{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthPayload{}, auth.ErrInvalidCredentials
	}

	return a.issue(userData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.User, error) {
	principal, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return user.User{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrAuthRequired
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return userData, nil
}

// Identify implements auth.AuthService.
func (a *AuthServiceImpl) Identify(ctx context.Context, userID string) (auth.Principal, error) {
	if !validator.IsValidUUID(userID) {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Principal{}, auth.ErrInvalidToken
		}
		return auth.Principal{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return auth.Principal{
		UserID:     userData.ID,
		Email:      userData.Email,
		Role:       userData.Role,
		EmployeeID: userData.EmployeeID,
	}, nil
}
