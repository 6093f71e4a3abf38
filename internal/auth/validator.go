package auth

import (
	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Stateless precondition checks for the sign-in flow. Each returns the first
// violated precondition; callers run them in order and stop at the first error.

func ValidateCredentials(user *models.User) error {
	if user == nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func ValidatePassword(password string, user *models.User) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return apperrors.ErrPasswordNotMatch
	}
	return nil
}

func ValidateUserExists(user *models.User) error {
	if user == nil {
		return apperrors.ErrAuthUserNotFound
	}
	return nil
}

// ValidateNoActiveSession enforces the single concurrent login per account.
func ValidateNoActiveSession(user *models.User) error {
	if user.Session != nil && user.Session.IsActive {
		return apperrors.ErrUserAlreadyLogin
	}
	return nil
}
