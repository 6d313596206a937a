package dbmodels

import (
	"time"

	"hiring-feedback-backend/models"
)

// SuccessStory история успешного найма, не более одной на отклик, append-only
type SuccessStory struct {
	BaseModel
	ApplicationID   string `gorm:"type:varchar(36);uniqueIndex"`
	CompanyID       string `gorm:"type:varchar(36);index"`
	ApplicantName   string `gorm:"type:varchar(255)"`
	JobTitle        string `gorm:"type:varchar(255)"`
	CompanyName     string `gorm:"type:varchar(255)"`
	AppliedAt       time.Time
	HiredAt         time.Time
	DaysToPlacement int
	BestAspect      string `gorm:"type:text"` // цитата кандидата
	Challenge       string `gorm:"type:text"` // рассказ кандидата из комментариев
	Salary          *int
	EmploymentType  models.EmploymentType `gorm:"type:varchar(50)"`
}
