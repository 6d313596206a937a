package feedbackapimodels

import (
	"hiring-feedback-backend/models"
	apimodels "hiring-feedback-backend/models/api"
)

// SubmitRequest отзыв кандидата, границы оценок проверяются здесь,
// агрегатор получает только валидные значения
type SubmitRequest struct {
	FeedbackQuality     int `json:"feedback_quality" validate:"required,min=1,max=5"`
	CommunicationSpeed  int `json:"communication_speed" validate:"required,min=1,max=5"`
	InterviewExperience int `json:"interview_experience" validate:"required,min=1,max=5"`
	ProcessTransparency int `json:"process_transparency" validate:"required,min=1,max=5"`
	OverallExperience   int `json:"overall_experience" validate:"required,min=1,max=5"`
	RecommendToFriend   int `json:"recommend_to_friend" validate:"required,min=1,max=10"`

	BestAspect      string `json:"best_aspect"`
	WorstAspect     string `json:"worst_aspect"`
	Comments        string `json:"comments"`
	WouldApplyAgain bool   `json:"would_apply_again"`
}

func (r SubmitRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

// FormView данные для формы отзыва по токену
type FormView struct {
	ApplicantName string               `json:"applicant_name"`
	JobTitle      string               `json:"job_title"`
	CompanyName   string               `json:"company_name"`
	Stage         models.PipelineStage `json:"stage"`
	StageName     string               `json:"stage_name"`
}

type RequestFeedbackRequest struct {
	Stage models.PipelineStage `json:"stage" validate:"required"`
}

func (r RequestFeedbackRequest) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	return r.Stage.Validate()
}
