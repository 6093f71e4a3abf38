package models

type User struct {
	BaseModel

	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null;index:active_user_index"`
	AvatarURL string
	Password  string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true;index:active_user_index"`

	// Relationships
	Account *UserAccount `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Session *UserSession `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`

	Interviews        []Interview        `gorm:"foreignKey:CreatedByUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	InterviewComments []InterviewComment `gorm:"foreignKey:CreatedByUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	InterviewLogs     []InterviewLog     `gorm:"foreignKey:CreatedByUserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
