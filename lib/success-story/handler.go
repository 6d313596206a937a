package successstoryhandler

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hiring-feedback-backend/db"
	outcomestore "hiring-feedback-backend/lib/outcome/store"
	"hiring-feedback-backend/lib/pipeline"
	successstorystore "hiring-feedback-backend/lib/success-story/store"
	"hiring-feedback-backend/models"
	storyapimodels "hiring-feedback-backend/models/api/success-story"
	dbmodels "hiring-feedback-backend/models/db"
)

// пороги продвижения отзыва в историю успеха
const (
	promoteMinOverall   = 4
	promoteMinRecommend = 7
)

type Provider interface {
	Evaluate(applicationID string, fb dbmodels.ApplicantFeedback) error
	List(filter storyapimodels.SuccessStoryFilter) ([]storyapimodels.SuccessStoryView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        successstorystore.NewInstance(db.DB),
		outcomeStore: outcomestore.NewInstance(db.DB),
		resolver:     pipeline.Instance,
	}
}

type impl struct {
	store        successstorystore.Provider
	outcomeStore outcomestore.Provider
	resolver     pipeline.Provider
}

// Evaluate продвигает отзыв в историю успеха, если оценки выше порогов
// и кандидат был нанят. Недотянувший до порогов отзыв - не ошибка,
// просто ничего не создается. Повторный вызов по тому же отклику - no-op
func (i impl) Evaluate(applicationID string, fb dbmodels.ApplicantFeedback) error {
	logger := log.WithField("application_id", applicationID)
	if !passesThresholds(fb) {
		return nil
	}
	outcome, err := i.outcomeStore.GetByApplicationID(applicationID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения результата подбора")
	}
	if outcome == nil {
		return errors.Wrap(models.ErrNotFound, "результат подбора не найден")
	}
	if outcome.Result != models.OutcomeHired {
		return nil
	}
	existing, err := i.store.GetByApplicationID(applicationID)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки истории успеха")
	}
	if existing != nil {
		// история уже создана, дубликатов не плодим
		return nil
	}
	resolved, err := i.resolver.Resolve(applicationID)
	if err != nil {
		return err
	}
	rec := dbmodels.SuccessStory{
		ApplicationID:   applicationID,
		CompanyID:       resolved.Application.CompanyID,
		ApplicantName:   resolved.Applicant.GetFullName(),
		JobTitle:        resolved.Vacancy.JobTitle,
		CompanyName:     resolved.Company.Name,
		AppliedAt:       resolved.Application.AppliedAt,
		HiredAt:         outcome.OccurredAt,
		DaysToPlacement: daysToPlacement(resolved.Application, *outcome),
		BestAspect:      fb.BestAspect,
		Challenge:       fb.Comments,
		Salary:          outcome.Salary,
		EmploymentType:  outcome.EmploymentType,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения истории успеха")
		return errors.Wrap(err, "ошибка сохранения истории успеха")
	}
	logger.WithField("story_id", id).Info("создана история успеха")
	return nil
}

func passesThresholds(fb dbmodels.ApplicantFeedback) bool {
	return fb.OverallExperience >= promoteMinOverall &&
		fb.RecommendToFriend >= promoteMinRecommend
}

func daysToPlacement(app dbmodels.Application, outcome dbmodels.ApplicationOutcome) int {
	d := outcome.OccurredAt.Sub(app.AppliedAt)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func (i impl) List(filter storyapimodels.SuccessStoryFilter) ([]storyapimodels.SuccessStoryView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения количества историй успеха")
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []storyapimodels.SuccessStoryView{}, rowCount, nil
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка историй успеха")
	}
	result := make([]storyapimodels.SuccessStoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, storyapimodels.Convert(rec))
	}
	return result, rowCount, nil
}
