package ratingauditstore

import (
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RatingAuditLog) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RatingAuditLog) error {
	return i.db.
		Create(&rec).
		Error
}
