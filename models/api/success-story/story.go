package storyapimodels

import (
	"time"

	"hiring-feedback-backend/models"
	apimodels "hiring-feedback-backend/models/api"
	dbmodels "hiring-feedback-backend/models/db"
)

type SuccessStoryFilter struct {
	apimodels.Pagination
	CompanyID string `json:"company_id"`
}

type SuccessStoryView struct {
	ID              string                `json:"id"`
	ApplicationID   string                `json:"application_id"`
	ApplicantName   string                `json:"applicant_name"`
	JobTitle        string                `json:"job_title"`
	CompanyName     string                `json:"company_name"`
	AppliedAt       time.Time             `json:"applied_at"`
	HiredAt         time.Time             `json:"hired_at"`
	DaysToPlacement int                   `json:"days_to_placement"`
	BestAspect      string                `json:"best_aspect"`
	Challenge       string                `json:"challenge"`
	Salary          *int                  `json:"salary,omitempty"`
	EmploymentType  models.EmploymentType `json:"employment_type,omitempty"`
}

func Convert(rec dbmodels.SuccessStory) SuccessStoryView {
	return SuccessStoryView{
		ID:              rec.ID,
		ApplicationID:   rec.ApplicationID,
		ApplicantName:   rec.ApplicantName,
		JobTitle:        rec.JobTitle,
		CompanyName:     rec.CompanyName,
		AppliedAt:       rec.AppliedAt,
		HiredAt:         rec.HiredAt,
		DaysToPlacement: rec.DaysToPlacement,
		BestAspect:      rec.BestAspect,
		Challenge:       rec.Challenge,
		Salary:          rec.Salary,
		EmploymentType:  rec.EmploymentType,
	}
}
