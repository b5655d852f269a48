package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagetrack/labour-backend-go/internal/domain/user"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key", "24h")

	designation := "Carpenter"
	token, expiresAt, err := svc.GenerateAccessToken(user.User{
		ID:          "6f1c9a3e",
		Name:        "Ramesh",
		Role:        user.RoleLabour,
		Designation: &designation,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims := decoded.PrivateClaims()
	assert.Equal(t, "6f1c9a3e", claims["user_id"])
	assert.Equal(t, "Ramesh", claims["name"])
	assert.Equal(t, "labour", claims["role"])
	assert.Equal(t, "Carpenter", claims["designation"])
	assert.Equal(t, "access", claims["type"])

	assert.Equal(t, time.Unix(expiresAt, 0).UTC(), decoded.Expiration())
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), expiresAt, 5)
}

func TestGenerateAccessTokenNilDesignation(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, _, err := svc.GenerateAccessToken(user.User{
		ID:   "a1",
		Name: "Admin",
		Role: user.RoleAdmin,
	})
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.PrivateClaims()["designation"])
	assert.Equal(t, "admin", decoded.PrivateClaims()["role"])
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "one-day")

	_, _, err := svc.GenerateAccessToken(user.User{ID: "a1", Role: user.RoleAdmin})
	assert.Error(t, err)
}
