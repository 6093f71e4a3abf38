package auth

import (
	"testing"
	"time"

	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	user := &models.User{
		Name:  "Admin User",
		Email: "admin@example.com",
		Account: &models.UserAccount{
			AccountType: models.AccountTypeAdmin,
			Department:  "Engineering",
		},
	}
	user.ID = "user-1"
	user.Account.ID = "account-1"
	return user
}

func TestGenerateAndVerifyToken(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "Admin User", claims["name"])

	accounts, ok := claims["accounts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.AccountTypeAdmin, accounts["accountType"])
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	_, err := VerifyToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	InitJWT("another-secret", time.Hour)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	InitJWT("test-secret", -time.Minute)

	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
