package models

import "time"

const (
	StatusCodeTodo       = "IS01"
	StatusCodeInProgress = "IS02"
	StatusCodeDone       = "IS03"
)

// MasterInterviewStatus is a static lookup table seeded at migration time.
type MasterInterviewStatus struct {
	Code      string `gorm:"type:varchar(5);primaryKey"`
	Title     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MasterInterviewStatus) TableName() string {
	return "master_interview_status"
}
