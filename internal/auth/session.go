package auth

import (
	"errors"
	"time"

	"github.com/interview-hub/interview-hub/internal/models"
	"gorm.io/gorm"
)

// UpsertActiveSession marks the user's single session row active, creating it
// on first login. Single-row write, so concurrent logins resolve last-write-wins.
func UpsertActiveSession(conn *gorm.DB, userID string) error {
	var session models.UserSession

	err := conn.Where("user_id = ?", userID).First(&session).Error

	if err == nil {
		return conn.Model(&session).Updates(map[string]interface{}{
			"is_active":  true,
			"updated_at": time.Now(),
		}).Error
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	session = models.UserSession{
		UserID:   userID,
		IsActive: true,
	}

	return conn.Create(&session).Error
}

// DeactivateSession clears the active flag. A user without a session row is
// already logged out, so that case is not an error.
func DeactivateSession(conn *gorm.DB, userID string) error {
	return conn.Model(&models.UserSession{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
}
