package feedbackstore

import (
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicantFeedback) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantFeedback) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
