package auth

import (
	"testing"
	"time"

	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/interview-hub/interview-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInSucceeds(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, conn, "admin@example.com", "password123")

	response, err := NewService(conn).SignIn("admin@example.com", "password123")
	require.NoError(t, err)

	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, user.ID, response.User.ID)
	assert.Equal(t, "admin@example.com", response.User.Email)
	require.NotNil(t, response.User.Accounts)
	assert.Equal(t, models.AccountTypeInterviewer, response.User.Accounts.AccountType)

	var session models.UserSession
	require.NoError(t, conn.Where("user_id = ?", user.ID).First(&session).Error)
	assert.True(t, session.IsActive)
}

func TestSignInRejectsSecondLogin(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, conn, "admin@example.com", "password123")

	service := NewService(conn)

	_, err := service.SignIn("admin@example.com", "password123")
	require.NoError(t, err)

	_, err = service.SignIn("admin@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyLogin)

	require.NoError(t, service.SignOut(user.ID))

	_, err = service.SignIn("admin@example.com", "password123")
	assert.NoError(t, err)
}

func TestSignInRejectsUnknownEmail(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)

	_, err := NewService(conn).SignIn("nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)
	testutil.CreateUser(t, conn, "admin@example.com", "password123")

	_, err := NewService(conn).SignIn("admin@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrPasswordNotMatch)
}

func TestSignInRejectsInactiveUser(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, conn, "admin@example.com", "password123")

	require.NoError(t, conn.Model(user).Update("is_active", false).Error)

	// Inactive users are invisible to the lookup path, so this reads as
	// invalid credentials rather than a disabled-account error.
	_, err := NewService(conn).SignIn("admin@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignOutIsIdempotent(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	conn := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, conn, "admin@example.com", "password123")

	service := NewService(conn)

	_, err := service.SignIn("admin@example.com", "password123")
	require.NoError(t, err)

	assert.NoError(t, service.SignOut(user.ID))
	assert.NoError(t, service.SignOut(user.ID))

	// Signing out a user who never signed in is also fine.
	assert.NoError(t, service.SignOut("never-logged-in"))
}

func TestValidateUser(t *testing.T) {
	conn := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, conn, "admin@example.com", "password123")

	service := NewService(conn)

	found, err := service.ValidateUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	require.NotNil(t, found.Account)
	assert.Equal(t, models.AccountTypeInterviewer, found.Account.AccountType)

	_, err = service.ValidateUser("no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
