package auth

import (
	"errors"

	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/interview-hub/interview-hub/internal/types"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

// SignIn authenticates by email and password. Checks run in order: the user
// record exists, the password matches, no other login is active. On success a
// token is issued and the session row is flipped active; a session write
// failure fails the whole sign-in (the computed token is stateless, nothing
// to roll back).
func (s *Service) SignIn(email, password string) (*types.AuthResponse, error) {
	user, err := s.findUserByEmail(email)

	if err != nil {
		return nil, err
	}

	if err := ValidateCredentials(user); err != nil {
		return nil, err
	}

	if err := ValidatePassword(password, user); err != nil {
		return nil, err
	}

	if err := ValidateNoActiveSession(user); err != nil {
		return nil, err
	}

	token, err := GenerateToken(user)

	if err != nil {
		return nil, err
	}

	if err := UpsertActiveSession(s.db, user.ID); err != nil {
		return nil, err
	}

	return &types.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        types.NewUserResponse(user),
	}, nil
}

// SignOut deactivates the user's session. Idempotent; signing out an already
// logged-out user succeeds.
func (s *Service) SignOut(userID string) error {
	return DeactivateSession(s.db, userID)
}

// ValidateUser resolves a user id to an active user record, as done for every
// authenticated request after token verification.
func (s *Service) ValidateUser(userID string) (*models.User, error) {
	var user models.User

	err := s.db.Preload("Account").
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *Service) findUserByEmail(email string) (*models.User, error) {
	var user models.User

	err := s.db.Preload("Account").Preload("Session").
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
