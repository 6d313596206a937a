package outcomeapimodels

import (
	"time"

	"hiring-feedback-backend/models"
	apimodels "hiring-feedback-backend/models/api"
)

type RecordOutcomeRequest struct {
	ApplicationID string               `json:"application_id" validate:"required"`
	Result        models.OutcomeResult `json:"result" validate:"required"`
	Stage         models.PipelineStage `json:"stage" validate:"required"`
	OccurredAt    time.Time            `json:"occurred_at"`

	// только для result = hired
	JobAccepted    bool                  `json:"job_accepted"`
	StartDate      *time.Time            `json:"start_date"`
	Salary         *int                  `json:"salary" validate:"omitempty,min=0"`
	EmploymentType models.EmploymentType `json:"employment_type"`
}

func (r RecordOutcomeRequest) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if err := r.Result.Validate(); err != nil {
		return err
	}
	return r.Stage.Validate()
}
