package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriformation_backend/internals/configs"
	userModel "agriformation_backend/internals/features/users/user/model"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	user := userModel.UserModel{
		UserID:       uuid.New(),
		UserFullName: "Ada Obi",
		UserRole:     "admin",
	}

	token, err := IssueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Ada Obi", claims["name"])

	expiry := TokenExpiry(claims)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), expiry, time.Minute)
}

func TestParseClaimsRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	token, err := IssueAccessToken(userModel.UserModel{UserID: uuid.New(), UserRole: "volunteer"})
	require.NoError(t, err)

	configs.JWTSecret = "another-secret"
	_, err = ParseClaims(token)
	assert.Error(t, err)
}

func TestIssueFailsWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := IssueAccessToken(userModel.UserModel{UserID: uuid.New()})
	assert.Error(t, err)
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}
