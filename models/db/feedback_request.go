package dbmodels

import (
	"time"

	"hiring-feedback-backend/models"
)

// FeedbackRequest приглашение кандидату оценить этап подбора.
// Токен одноразовый, выдает право ровно на один отзыв
type FeedbackRequest struct {
	BaseModel
	ApplicationID string               `gorm:"type:varchar(36);index;uniqueIndex:idx_feedback_request_stage"`
	Application   *Application         `gorm:"foreignKey:ApplicationID"`
	CompanyID     string               `gorm:"type:varchar(36);index"`
	VacancyID     string               `gorm:"type:varchar(36)"`
	Stage         models.PipelineStage `gorm:"type:varchar(50);uniqueIndex:idx_feedback_request_stage"`
	Token         string               `gorm:"type:varchar(64);uniqueIndex"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}

func (r FeedbackRequest) IsUsed() bool {
	return !r.DateUsed.IsZero()
}

func (r FeedbackRequest) IsExpired() bool {
	return r.DateExpires.Before(time.Now())
}
