package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

const TokenTypeAccess = "access"

// Claims are the fields StaffHub stores in an access token.
type Claims struct {
	UserID string
	Email  string
	Role   user.Role
	Type   string
}

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	// Verify decodes and validates a raw token string.
	Verify(ctx context.Context, tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (*JWTService, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration %q: %w", accessTokenExpirationTime, err)
	}
	return &JWTService{
		accessTokenExpirationTime: expDuration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	now := j.now()
	expiresAt = now.Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"sub":     userID,
		"email":   email,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"iat":     now.Unix(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) Verify(ctx context.Context, tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return Claims{}, err
	}
	return ClaimsFromMap(claims)
}

// ClaimsFromMap extracts access token claims, rejecting any other token type.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	tokenType, _ := m["type"].(string)
	if tokenType != TokenTypeAccess {
		return Claims{}, jwt.ErrInvalidJWT()
	}
	userID, ok := m["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, jwt.ErrInvalidJWT()
	}
	email, _ := m["email"].(string)
	role, _ := m["role"].(string)

	return Claims{
		UserID: userID,
		Email:  email,
		Role:   user.Role(role),
		Type:   tokenType,
	}, nil
}
