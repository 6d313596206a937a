package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	GetByID(id string) (*dbmodels.Application, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
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
