package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wagetrack/labour-backend-go/internal/domain/auth"
	"github.com/wagetrack/labour-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	user.Repository
	users map[string]user.User
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := s.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateAccessToken(u user.User) (string, int64, error) {
	return "token-" + u.ID, 1790000000, nil
}

func (stubJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func testRepo(t *testing.T) *stubUserRepo {
	t.Helper()
	hash, err := HashPIN("1234")
	require.NoError(t, err)

	designation := "Mason"
	return &stubUserRepo{users: map[string]user.User{
		"1001": {
			ID: "lab-1", Username: "1001", Name: "Ram", Role: user.RoleLabour,
			PINHash: hash, Designation: &designation, Status: user.StatusActive,
		},
		"1002": {
			ID: "lab-2", Username: "1002", Name: "Shyam", Role: user.RoleLabour,
			PINHash: hash, Status: user.StatusInactive,
		},
	}}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(testRepo(t), stubJWTService{})

	t.Run("success", func(t *testing.T) {
		result, err := svc.Login(ctx, auth.LoginRequest{Username: "1001", PIN: "1234"})
		require.NoError(t, err)
		assert.Equal(t, "token-lab-1", result.Token)
		assert.Equal(t, int64(1790000000), result.ExpiresAt)
		assert.Equal(t, "1001", result.User.Username)
		assert.Equal(t, "labour", result.User.Role)
		require.NotNil(t, result.User.Designation)
		assert.Equal(t, "Mason", *result.User.Designation)
	})

	t.Run("wrong pin", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "1001", PIN: "9999"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown username looks like wrong pin", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "9001", PIN: "1234"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "1002", PIN: "1234"})
		assert.ErrorIs(t, err, auth.ErrAccountInactive)
	})

	t.Run("malformed pin rejected before lookup", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "1001", PIN: "12a4"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestHashPIN(t *testing.T) {
	hash, err := HashPIN("4321")
	require.NoError(t, err)
	assert.NotEqual(t, "4321", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("4321")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("1234")))
}
