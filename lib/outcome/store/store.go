package outcomestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationOutcome) (id string, err error)
	GetByApplicationID(applicationID string) (*dbmodels.ApplicationOutcome, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationOutcome) (id string, err error) {
	err = i.db.
		Omit("Application").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplicationID(applicationID string) (*dbmodels.ApplicationOutcome, error) {
	rec := dbmodels.ApplicationOutcome{}
	err := i.db.
		Where("application_id = ?", applicationID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
