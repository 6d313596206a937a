package ratingapimodels

import (
	dbmodels "hiring-feedback-backend/models/db"
)

type CompanyRatingView struct {
	CompanyID           string  `json:"company_id"`
	CompanyName         string  `json:"company_name,omitempty"`
	FeedbackQuality     float64 `json:"feedback_quality"`
	CommunicationSpeed  float64 `json:"communication_speed"`
	InterviewExperience float64 `json:"interview_experience"`
	ProcessTransparency float64 `json:"process_transparency"`
	ReviewCount         int64   `json:"review_count"`
}

func Convert(rec dbmodels.CompanyRating) CompanyRatingView {
	view := CompanyRatingView{
		CompanyID:           rec.CompanyID,
		FeedbackQuality:     rec.FeedbackQuality,
		CommunicationSpeed:  rec.CommunicationSpeed,
		InterviewExperience: rec.InterviewExperience,
		ProcessTransparency: rec.ProcessTransparency,
		ReviewCount:         rec.ReviewCount,
	}
	if rec.Company != nil {
		view.CompanyName = rec.Company.Name
	}
	return view
}
