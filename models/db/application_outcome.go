package dbmodels

import (
	"time"

	"hiring-feedback-backend/models"
)

// ApplicationOutcome терминальный результат по отклику, одна запись на отклик,
// таблица append-only
type ApplicationOutcome struct {
	BaseModel
	ApplicationID string               `gorm:"type:varchar(36);uniqueIndex"`
	Application   *Application         `gorm:"foreignKey:ApplicationID"`
	Result        models.OutcomeResult `gorm:"type:varchar(50)"`
	Stage         models.PipelineStage `gorm:"type:varchar(50)"`
	OccurredAt    time.Time

	// поля найма, заполняются только при Result = hired
	JobAccepted    bool
	StartDate      *time.Time
	Salary         *int
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
}
