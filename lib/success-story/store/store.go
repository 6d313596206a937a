package successstorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	storyapimodels "hiring-feedback-backend/models/api/success-story"
	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.SuccessStory) (id string, err error)
	GetByApplicationID(applicationID string) (*dbmodels.SuccessStory, error)
	ListCount(filter storyapimodels.SuccessStoryFilter) (count int64, err error)
	List(filter storyapimodels.SuccessStoryFilter) (list []dbmodels.SuccessStory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.SuccessStory) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplicationID(applicationID string) (*dbmodels.SuccessStory, error) {
	rec := dbmodels.SuccessStory{}
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

func (i impl) ListCount(filter storyapimodels.SuccessStoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.SuccessStory{})
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) List(filter storyapimodels.SuccessStoryFilter) (list []dbmodels.SuccessStory, err error) {
	list = []dbmodels.SuccessStory{}
	tx := i.db.
		Model(dbmodels.SuccessStory{})
	if filter.CompanyID != "" {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("created_at desc")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
