package feedbackrequeststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.FeedbackRequest) (id string, err error)
	GetByToken(token string) (*dbmodels.FeedbackRequest, error)
	GetByApplicationStage(applicationID string, stage models.PipelineStage) (*dbmodels.FeedbackRequest, error)
	RefreshToken(id, token string, dateGenerated, dateExpires time.Time) error
	MarkUsed(id string) (updated bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FeedbackRequest) (id string, err error) {
	err = i.db.
		Omit("Application").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByToken(token string) (*dbmodels.FeedbackRequest, error) {
	rec := dbmodels.FeedbackRequest{}
	err := i.db.
		Where("token = ?", token).
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

func (i impl) GetByApplicationStage(applicationID string, stage models.PipelineStage) (*dbmodels.FeedbackRequest, error) {
	rec := dbmodels.FeedbackRequest{}
	err := i.db.
		Where("application_id = ?", applicationID).
		Where("stage = ?", stage).
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

func (i impl) RefreshToken(id, token string, dateGenerated, dateExpires time.Time) error {
	return i.db.
		Model(&dbmodels.FeedbackRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"token":          token,
			"date_generated": dateGenerated,
			"date_expires":   dateExpires,
		}).
		Error
}

// MarkUsed помечает токен использованным, срабатывает не более одного раза,
// повторная попытка вернет updated = false
func (i impl) MarkUsed(id string) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.FeedbackRequest{}).
		Where("id = ?", id).
		Where("date_used < ?", time.Now().AddDate(-50, 0, 0)). // только не использованные
		Update("date_used", time.Now())
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
