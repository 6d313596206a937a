package employmentcheckstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmploymentCheckTask) (id string, err error)
	ListDue(moment time.Time, limit int) ([]dbmodels.EmploymentCheckTask, error)
	SetStatus(id string, status dbmodels.CheckTaskStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmploymentCheckTask) (id string, err error) {
	err = i.db.
		Omit("Application").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListDue(moment time.Time, limit int) ([]dbmodels.EmploymentCheckTask, error) {
	list := []dbmodels.EmploymentCheckTask{}
	err := i.db.
		Where("status = ?", dbmodels.CheckTaskPending).
		Where("due_at <= ?", moment).
		Order("due_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) SetStatus(id string, status dbmodels.CheckTaskStatus) error {
	return i.db.
		Model(&dbmodels.EmploymentCheckTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   status,
			"attempts": gorm.Expr("attempts + 1"),
		}).
		Error
}
