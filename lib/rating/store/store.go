package ratingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	GetByCompanyID(companyID string) (*dbmodels.CompanyRating, error)
	GetForUpdate(companyID string) (*dbmodels.CompanyRating, error)
	Create(rec dbmodels.CompanyRating) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	List() ([]dbmodels.CompanyRating, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCompanyID(companyID string) (*dbmodels.CompanyRating, error) {
	rec := dbmodels.CompanyRating{}
	err := i.db.
		Where("company_id = ?", companyID).
		Preload("Company").
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

// GetForUpdate читает срез под блокировкой строки, вызывать только внутри транзакции
func (i impl) GetForUpdate(companyID string) (*dbmodels.CompanyRating, error) {
	rec := dbmodels.CompanyRating{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ?", companyID).
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

func (i impl) Create(rec dbmodels.CompanyRating) (id string, err error) {
	err = i.db.
		Omit("Company").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.CompanyRating{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() ([]dbmodels.CompanyRating, error) {
	list := []dbmodels.CompanyRating{}
	err := i.db.
		Preload("Company").
		Order("review_count desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
