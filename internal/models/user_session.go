package models

// UserSession marks whether a user currently holds the single allowed login.
// There is at most one row per user; it is flipped rather than recreated.
type UserSession struct {
	BaseModel

	UserID   string `gorm:"type:varchar(36);not null;uniqueIndex;index:active_user_session_index"`
	IsActive bool   `gorm:"not null;default:true;index:active_user_session_index"`
}
