package ratinghandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-feedback-backend/db"
	ratingauditstore "hiring-feedback-backend/lib/rating/audit-store"
	ratingstore "hiring-feedback-backend/lib/rating/store"
	"hiring-feedback-backend/models"
	dbmodels "hiring-feedback-backend/models/db"
)

type Provider interface {
	ApplyFeedback(companyID string, fb dbmodels.ApplicantFeedback) error
	GetCompanyRating(companyID string) (*dbmodels.CompanyRating, error)
	List() ([]dbmodels.CompanyRating, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ApplyFeedback инкрементально пересчитывает средние по работодателю.
// Чтение и запись среза идут в одной транзакции под блокировкой строки,
// параллельные отзывы по одному работодателю выполняются последовательно.
// Границы оценок здесь не проверяются, за это отвечает прием отзыва
func (i impl) ApplyFeedback(companyID string, fb dbmodels.ApplicantFeedback) error {
	logger := log.WithField("company_id", companyID).
		WithField("feedback_id", fb.ID)
	var before, after dbmodels.RatingSnapshot
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := ratingstore.NewInstance(tx)
		auditStore := ratingauditstore.NewInstance(tx)

		rec, err := store.GetForUpdate(companyID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения рейтинга работодателя")
		}
		if rec == nil {
			newRec := dbmodels.CompanyRating{CompanyID: companyID}
			id, err := store.Create(newRec)
			if err != nil {
				return errors.Wrap(err, "ошибка создания рейтинга работодателя")
			}
			newRec.ID = id
			rec = &newRec
		}
		before = rec.Snapshot()
		after = applyIncrement(before, fb)

		updMap := map[string]interface{}{
			"feedback_quality":     after.FeedbackQuality,
			"communication_speed":  after.CommunicationSpeed,
			"interview_experience": after.InterviewExperience,
			"process_transparency": after.ProcessTransparency,
			"review_count":         after.ReviewCount,
		}
		if err = store.Update(rec.ID, updMap); err != nil {
			return errors.Wrap(err, "ошибка обновления рейтинга работодателя")
		}
		return auditStore.Create(dbmodels.RatingAuditLog{
			CompanyID:  companyID,
			FeedbackID: fb.ID,
			Before:     before,
			After:      after,
		})
	})
	if err != nil {
		logger.WithError(err).Error("ошибка применения отзыва к рейтингу")
		return err
	}
	logger.WithField("before", before).
		WithField("after", after).
		Info("рейтинг работодателя обновлен")
	return nil
}

// applyIncrement точное инкрементальное среднее: (avg*N + r) / (N+1).
// Каждый отзыв весит одинаково независимо от давности
func applyIncrement(before dbmodels.RatingSnapshot, fb dbmodels.ApplicantFeedback) dbmodels.RatingSnapshot {
	n := float64(before.ReviewCount)
	next := func(avg float64, rating int) float64 {
		return (avg*n + float64(rating)) / (n + 1)
	}
	return dbmodels.RatingSnapshot{
		FeedbackQuality:     next(before.FeedbackQuality, fb.FeedbackQuality),
		CommunicationSpeed:  next(before.CommunicationSpeed, fb.CommunicationSpeed),
		InterviewExperience: next(before.InterviewExperience, fb.InterviewExperience),
		ProcessTransparency: next(before.ProcessTransparency, fb.ProcessTransparency),
		ReviewCount:         before.ReviewCount + 1,
	}
}

func (i impl) GetCompanyRating(companyID string) (*dbmodels.CompanyRating, error) {
	rec, err := ratingstore.NewInstance(db.DB).GetByCompanyID(companyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения рейтинга работодателя")
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "рейтинг работодателя не найден")
	}
	return rec, nil
}

func (i impl) List() ([]dbmodels.CompanyRating, error) {
	list, err := ratingstore.NewInstance(db.DB).List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка рейтингов")
	}
	return list, nil
}
