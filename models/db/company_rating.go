package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

// CompanyRating агрегат рейтинга работодателя.
// Обновляется только инкрементально под блокировкой строки,
// полный пересчет по истории не выполняется
type CompanyRating struct {
	BaseModel
	CompanyID           string   `gorm:"type:varchar(36);uniqueIndex"`
	Company             *Company `gorm:"foreignKey:CompanyID"`
	FeedbackQuality     float64
	CommunicationSpeed  float64
	InterviewExperience float64
	ProcessTransparency float64
	ReviewCount         int64
}

func (r CompanyRating) Snapshot() RatingSnapshot {
	return RatingSnapshot{
		FeedbackQuality:     r.FeedbackQuality,
		CommunicationSpeed:  r.CommunicationSpeed,
		InterviewExperience: r.InterviewExperience,
		ProcessTransparency: r.ProcessTransparency,
		ReviewCount:         r.ReviewCount,
	}
}

type RatingSnapshot struct {
	FeedbackQuality     float64 `json:"feedback_quality"`
	CommunicationSpeed  float64 `json:"communication_speed"`
	InterviewExperience float64 `json:"interview_experience"`
	ProcessTransparency float64 `json:"process_transparency"`
	ReviewCount         int64   `json:"review_count"`
}

func (s RatingSnapshot) Value() (driver.Value, error) {
	valueString, err := json.Marshal(s)
	return string(valueString), err
}

func (s *RatingSnapshot) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &s); err != nil {
		return err
	}
	return nil
}

// RatingAuditLog пара срезов до/после для аудита, на корректность не влияет
type RatingAuditLog struct {
	BaseModel
	CompanyID  string         `gorm:"type:varchar(36);index"`
	FeedbackID string         `gorm:"type:varchar(36)"`
	Before     RatingSnapshot `gorm:"type:jsonb"`
	After      RatingSnapshot `gorm:"type:jsonb"`
}
