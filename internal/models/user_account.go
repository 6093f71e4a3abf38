package models

const (
	AccountTypeAdmin       = "admin"
	AccountTypeHR          = "hr"
	AccountTypeInterviewer = "interviewer"
	AccountTypeCandidate   = "candidate"
)

type UserAccount struct {
	BaseModel

	UserID      string `gorm:"type:varchar(36);not null;index"`
	AccountType string `gorm:"not null"` // "admin", "hr", "interviewer" or "candidate"
	Department  string
	Position    string
	IsActive    bool `gorm:"not null;default:true"`
}
