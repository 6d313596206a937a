package companystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	GetByID(id string) (*dbmodels.Company, error)
	List() ([]dbmodels.Company, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
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

func (i impl) List() ([]dbmodels.Company, error) {
	list := []dbmodels.Company{}
	err := i.db.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
