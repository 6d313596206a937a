package dbmodels

import "hiring-feedback-backend/models"

// ApplicantFeedback отзыв кандидата по этапу подбора, после сохранения не меняется.
// Границы оценок проверяются на приеме запроса, до сохранения
type ApplicantFeedback struct {
	BaseModel
	ApplicationID string               `gorm:"type:varchar(36);index"`
	CompanyID     string               `gorm:"type:varchar(36);index"`
	RequestID     string               `gorm:"type:varchar(36)"`
	Stage         models.PipelineStage `gorm:"type:varchar(50)"`

	FeedbackQuality     int // 1-5, качество обратной связи
	CommunicationSpeed  int // 1-5, скорость коммуникации
	InterviewExperience int // 1-5, впечатление от интервью
	ProcessTransparency int // 1-5, прозрачность процесса
	OverallExperience   int // 1-5, общее впечатление
	RecommendToFriend   int // 1-10, готовность рекомендовать

	BestAspect      string `gorm:"type:text"`
	WorstAspect     string `gorm:"type:text"`
	Comments        string `gorm:"type:text"`
	WouldApplyAgain bool
}
