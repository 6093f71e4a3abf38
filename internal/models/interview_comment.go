package models

type InterviewComment struct {
	BaseModel

	InterviewID     string `gorm:"type:varchar(36);not null;index"`
	CreatedByUserID string `gorm:"type:varchar(36);not null"`
	Comment         string `gorm:"type:text;not null"`

	// Relationships
	CreatedByUser User `gorm:"foreignKey:CreatedByUserID"`
}
