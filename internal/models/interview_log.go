package models

// InterviewLog is an append-only snapshot of the values requested by a
// successful detail update. Rows are never updated or deleted.
type InterviewLog struct {
	BaseModel

	InterviewID     string `gorm:"type:varchar(36);not null;index"`
	CreatedByUserID string `gorm:"type:varchar(36);not null"`
	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	StatusCode      string `gorm:"column:master_interview_status_code;type:varchar(5);not null"`

	// Relationships
	Status        MasterInterviewStatus `gorm:"foreignKey:StatusCode;references:Code"`
	CreatedByUser User                  `gorm:"foreignKey:CreatedByUserID"`
}
