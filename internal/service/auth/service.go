package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/wagetrack/labour-backend-go/internal/domain/auth"
	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		Repository: userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a username and 4-digit PIN and issues an access token.
// Unknown usernames and wrong PINs are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.Repository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive() {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.SessionUser{
			ID:          u.ID,
			Username:    u.Username,
			Name:        u.Name,
			Role:        string(u.Role),
			Designation: u.Designation,
		},
	}, nil
}

// HashPIN creates the bcrypt hash stored for a user's PIN.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}
	return string(hash), nil
}

// GeneratePIN returns a random 4-digit PIN in [1000, 9999].
func GeneratePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate pin: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
