package models

type Interview struct {
	BaseModel

	Title           string `gorm:"not null"`
	Description     string `gorm:"type:text"`
	IsArchived      bool   `gorm:"not null;default:false"`
	StatusCode      string `gorm:"column:master_interview_status_code;type:varchar(5);not null"`
	CreatedByUserID string `gorm:"type:varchar(36);not null;index"`

	// Relationships
	Status        MasterInterviewStatus `gorm:"foreignKey:StatusCode;references:Code"`
	CreatedByUser User                  `gorm:"foreignKey:CreatedByUserID"`

	Comments []InterviewComment `gorm:"foreignKey:InterviewID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Logs     []InterviewLog     `gorm:"foreignKey:InterviewID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
